package transcript

import (
	"fmt"
	"strings"
)

// EstimateSizeBytes approxime la taille du fichier exporté (texte UTF-8).
func EstimateSizeBytes(text string) int {
	return len(text)
}

// FormatSize rend une taille lisible (B / KB / MB).
func FormatSize(bytesCount int) string {
	if bytesCount < 1024 {
		return fmt.Sprintf("%d B", bytesCount)
	}
	kb := float64(bytesCount) / 1024
	if kb < 1024 {
		return fmt.Sprintf("%.1f KB", kb)
	}
	mb := kb / 1024
	return fmt.Sprintf("%.2f MB", mb)
}

// WordCount compte les mots (séquences séparées par des blancs).
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharCount compte les caractères (runes, pas les octets).
func CharCount(text string) int {
	return len([]rune(text))
}

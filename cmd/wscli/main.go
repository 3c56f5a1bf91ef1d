// wscli récupère un transcript YouTube en ligne de commande, le met en
// forme et l'enregistre dans un fichier (et, au choix, le copie dans le
// presse-papier).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/webscribe/internal/assets"
	"github.com/patrickprogramme/webscribe/internal/bootstrap"
	"github.com/patrickprogramme/webscribe/internal/clipboard"
	"github.com/patrickprogramme/webscribe/internal/config"
	"github.com/patrickprogramme/webscribe/internal/export"
	"github.com/patrickprogramme/webscribe/internal/fsutil"
	"github.com/patrickprogramme/webscribe/internal/transcript"
	"github.com/patrickprogramme/webscribe/internal/yt"
)

type cliFlags struct {
	ConfigPath string
	URL        string
	Language   string
	Start      string
	End        string
	Mode       string
	Format     string
	OutputDir  string
	WithTitle  bool
	WithDesc   bool
	Copy       bool
	Overwrite  bool
	ListOnly   bool
}

func main() {
	flags := parseFlags()
	if flags.URL == "" {
		fmt.Fprintln(os.Stderr, "usage: wscli -url <youtube-url> [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	binDir := "."
	if exePath, err := os.Executable(); err == nil {
		binDir = filepath.Dir(exePath)
	}
	if flags.ConfigPath == "webscribe.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "webscribe.yaml")
	}
	if err := bootstrap.EnsureConfigPresent(flags.ConfigPath, assets.Embedded, assets.DefaultConfigAsset); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// les flags priment sur la config
	if flags.Mode == "" {
		flags.Mode = cfg.Render.DisplayMode
	}
	if flags.Format == "" {
		flags.Format = cfg.Export.Format
	}
	if flags.OutputDir == "" {
		flags.OutputDir = cfg.Export.OutputDir
	}

	mode, err := transcript.ParseDisplayMode(flags.Mode)
	if err != nil {
		log.Fatalf("mode: %v", err)
	}
	format, err := export.ParseFormat(flags.Format)
	if err != nil {
		log.Fatalf("format: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	videoID, ok := yt.ExtractVideoID(flags.URL)
	if !ok {
		log.Fatalf("%v: %s", yt.ErrInvalidURL, flags.URL)
	}

	client := &yt.Client{
		Timeout:        cfg.FetchTimeout(),
		MaxBytes:       cfg.Fetch.MaxBytes,
		UserAgent:      cfg.Fetch.UserAgent,
		AcceptLanguage: cfg.Fetch.AcceptLanguage,
	}

	tracks, defaultCode, err := client.ListTracks(ctx, videoID)
	if err != nil {
		log.Fatalf("list tracks: %v", err)
	}
	if flags.ListOnly {
		for _, t := range tracks {
			fmt.Println(t.Label())
		}
		return
	}

	language := flags.Language
	if language == "" {
		language = defaultCode
	}

	// état de session CLI ; métadonnées best-effort
	state := &transcript.State{VideoTitle: videoID, VideoURL: flags.URL}
	if meta, merr := client.Metadata(ctx, videoID); merr == nil {
		state.VideoTitle = meta.Title
		state.VideoDescription = meta.Description
		state.VideoLength = meta.LengthSeconds
	} else {
		log.Printf("warning: metadata: %v", merr)
	}

	state.FullSegments, err = client.FetchSegments(ctx, videoID, language)
	if err != nil {
		log.Fatalf("fetch transcript: %v", err)
	}

	start, end, err := transcript.ResolveRange(state.FullSegments, flags.Start, flags.End, state.VideoLength)
	if err != nil {
		log.Fatalf("range: %v", err)
	}

	state.CurrentText = transcript.BuildFilteredText(state.FullSegments, transcript.RenderOptions{
		StartStr:           start,
		EndStr:             end,
		Mode:               mode,
		IncludeTitle:       flags.WithTitle,
		IncludeDescription: flags.WithDesc,
		VideoTitle:         state.VideoTitle,
		VideoDescription:   state.VideoDescription,
	})

	data, err := export.Render(format, state.CurrentText)
	if err != nil {
		log.Fatalf("export: %v", err)
	}

	base := fsutil.SanitizeFilename(state.VideoTitle)
	path, err := fsutil.SaveExportAtomic(flags.OutputDir, base, "."+format.Extension(), data, flags.Overwrite || cfg.Export.Overwrite)
	if err != nil {
		log.Fatalf("save: %v", err)
	}

	sizeBytes := transcript.EstimateSizeBytes(state.CurrentText)
	fmt.Printf("%s [%s - %s] %d mots, %s -> %s\n",
		state.VideoTitle, start, end, transcript.WordCount(state.CurrentText), transcript.FormatSize(sizeBytes), path)

	if flags.Copy && format == export.FormatTXT {
		if err := clipboard.WriteAll(state.CurrentText); err != nil {
			log.Printf("warning: clipboard: %v", err)
		} else {
			fmt.Println("texte copié dans le presse-papier")
		}
	}
}

func parseFlags() *cliFlags {
	f := &cliFlags{}
	flag.StringVar(&f.ConfigPath, "config", "webscribe.yaml", "path to config file")
	flag.StringVar(&f.URL, "url", "", "YouTube URL ou ID de vidéo")
	flag.StringVar(&f.Language, "language", "", "code langue du transcript (défaut : anglais si disponible)")
	flag.StringVar(&f.Start, "start", "", "début de plage (mm:ss ou hh:mm:ss)")
	flag.StringVar(&f.End, "end", "", "fin de plage (mm:ss ou hh:mm:ss)")
	flag.StringVar(&f.Mode, "mode", "", "mode d'affichage des timestamps")
	flag.StringVar(&f.Format, "format", "", "format d'export : txt, csv, docx, pdf")
	flag.StringVar(&f.OutputDir, "out", "", "dossier de sortie")
	flag.BoolVar(&f.WithTitle, "title", false, "inclure le titre de la vidéo")
	flag.BoolVar(&f.WithDesc, "description", false, "inclure la description de la vidéo")
	flag.BoolVar(&f.Copy, "copy", false, "copier le texte dans le presse-papier (txt uniquement)")
	flag.BoolVar(&f.Overwrite, "overwrite", false, "écraser un fichier existant")
	flag.BoolVar(&f.ListOnly, "list-languages", false, "lister les langues disponibles puis quitter")
	flag.Parse()
	return f
}

package transcript

import (
	"strings"
	"testing"
)

func demoSegments() []Segment {
	return []Segment{
		{Text: "Hello", Start: 0, Duration: 2},
		{Text: "World", Start: 5, Duration: 2},
		{Text: "End", Start: 20, Duration: 2},
	}
}

func TestBuildFilteredTextEnvelope(t *testing.T) {
	// start=3 -> premier segment avec start>=3 est l'index 1, on prend i-1=0 ;
	// end=21 -> dernier segment avec start<=21 est l'index 2, +1 plafonné à 2.
	out := BuildFilteredText(demoSegments(), RenderOptions{
		StartStr: "3",
		EndStr:   "21",
		Mode:     ModeTimestampBefore,
	})
	want := "[00:00] Hello\n[00:05] World\n[00:20] End"
	if out != want {
		t.Fatalf("rendu = %q, attendu %q", out, want)
	}
}

func TestBuildFilteredTextEmptySegments(t *testing.T) {
	// liste vide -> chaîne vide, même avec titre/description demandés
	out := BuildFilteredText(nil, RenderOptions{
		Mode:               ModeTimestampBefore,
		IncludeTitle:       true,
		IncludeDescription: true,
		VideoTitle:         "Titre",
		VideoDescription:   "Description",
	})
	if out != "" {
		t.Fatalf("attendu chaîne vide, obtenu %q", out)
	}
}

func TestBuildFilteredTextBlockMode(t *testing.T) {
	s := []Segment{
		{Text: "Hi", Start: 0, Duration: 1},
		{Text: "There", Start: 2, Duration: 1},
	}
	out := BuildFilteredText(s, RenderOptions{Mode: ModeNoTimestampBlock})
	if out != "Hi There" {
		t.Fatalf("mode bloc = %q, attendu %q", out, "Hi There")
	}
}

func TestBuildFilteredTextModes(t *testing.T) {
	s := []Segment{{Text: "Hi", Start: 65, Duration: 1}}

	cases := []struct {
		mode DisplayMode
		want string
	}{
		{ModeTimestampNewline, "[01:05]\nHi"},
		{ModeTimestampBefore, "[01:05] Hi"},
		{ModeTimestampAfter, "Hi [01:05]"},
		{ModeNoTimestampLines, "Hi"},
		{ModeNoTimestampBlock, "Hi"},
	}
	for _, c := range cases {
		if got := BuildFilteredText(s, RenderOptions{Mode: c.mode}); got != c.want {
			t.Fatalf("mode %s = %q, attendu %q", c.mode, got, c.want)
		}
	}
}

func TestBuildFilteredTextCollapsesNewlines(t *testing.T) {
	s := []Segment{{Text: "ligne un\nligne deux ", Start: 0, Duration: 1}}
	out := BuildFilteredText(s, RenderOptions{Mode: ModeNoTimestampLines})
	if out != "ligne un ligne deux" {
		t.Fatalf("normalisation = %q", out)
	}
}

func TestBuildFilteredTextHeader(t *testing.T) {
	s := []Segment{{Text: "Hi", Start: 0, Duration: 1}}

	out := BuildFilteredText(s, RenderOptions{
		Mode:               ModeNoTimestampLines,
		IncludeTitle:       true,
		IncludeDescription: true,
		VideoTitle:         "  Mon Titre  ",
		VideoDescription:   "Une description.",
	})
	want := "Mon Titre\n\nUne description.\n\nHi"
	if out != want {
		t.Fatalf("en-tête = %q, attendu %q", out, want)
	}

	// titre seul
	out = BuildFilteredText(s, RenderOptions{
		Mode:         ModeNoTimestampLines,
		IncludeTitle: true,
		VideoTitle:   "Mon Titre",
	})
	if out != "Mon Titre\n\nHi" {
		t.Fatalf("titre seul = %q", out)
	}

	// flags posés mais valeurs vides -> pas d'en-tête
	out = BuildFilteredText(s, RenderOptions{
		Mode:               ModeNoTimestampLines,
		IncludeTitle:       true,
		IncludeDescription: true,
	})
	if out != "Hi" {
		t.Fatalf("en-tête vide = %q", out)
	}
}

func TestBuildFilteredTextStartPastAllSegments(t *testing.T) {
	// borne de début au-delà de tous les segments : repli sur len-2
	out := BuildFilteredText(demoSegments(), RenderOptions{
		StartStr: "10:00",
		Mode:     ModeNoTimestampLines,
	})
	if out != "World\nEnd" {
		t.Fatalf("repli len-2 = %q, attendu %q", out, "World\nEnd")
	}
}

// propriété : pour toute plage résolue valide, la tranche n'est jamais vide
// tant qu'il existe des segments
func TestBuildFilteredTextNeverEmptyForValidRange(t *testing.T) {
	s := demoSegments()
	for _, r := range [][2]string{{"", ""}, {"0", "0:01"}, {"0:06", ""}, {"0:19", "0:22"}} {
		start, end, err := ResolveRange(s, r[0], r[1], 0)
		if err != nil {
			t.Fatalf("ResolveRange(%q, %q): %v", r[0], r[1], err)
		}
		out := BuildFilteredText(s, RenderOptions{StartStr: start, EndStr: end, Mode: ModeNoTimestampLines})
		if strings.TrimSpace(out) == "" {
			t.Fatalf("rendu vide pour la plage (%q, %q)", start, end)
		}
	}
}

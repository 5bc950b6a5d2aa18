package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Intro", "Intro"},
		{"illegal characters", `What's <Going> On?`, "What's Going On"},
		{"path separators", "AC/DC - Back\\In Black", "ACDC - BackIn Black"},
		{"colon and pipe", "12:34 | Reprise", "1234 Reprise"},
		{"control characters", "Side\x00 One\x1f", "Side One"},
		{"collapse whitespace", "  Money   For\tNothing  ", "Money For Nothing"},
		{"accented preserved", "Épilogue für Elise", "Épilogue für Elise"},
		{"multibyte preserved", "夜明けのうた", "夜明けのうた"},
		{"only illegal", `<>:"|?*`, ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileNameIdempotent(t *testing.T) {
	inputs := []string{
		"Intro",
		`What's <Going> On?`,
		"  Money   For Nothing  ",
		"Épilogue für Elise",
		"夜明けのうた - remix/edit",
	}
	for _, input := range inputs {
		once := SanitizeFileName(input)
		twice := SanitizeFileName(once)
		if once != twice {
			t.Errorf("SanitizeFileName not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

package main

import (
	"strings"
	"testing"
)

func TestRenderRanking(t *testing.T) {
	out := renderRanking("Title", "Similarity", []rankedRow{
		{name: "Goodfellas", metric: "0.412"},
		{name: "Casino", metric: "0.307"},
	})

	// StyleRounded upper-cases header cells.
	for _, want := range []string{"TITLE", "SIMILARITY", "Goodfellas", "0.412", "Casino", "0.307"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in table:\n%s", want, out)
		}
	}

	lines := strings.Split(out, "\n")
	for name, rank := range map[string]string{"Goodfellas": "1", "Casino": "2"} {
		found := false
		for _, line := range lines {
			if strings.Contains(line, name) && strings.Contains(line, rank) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("row %q should carry rank %s:\n%s", name, rank, out)
		}
	}
}

func TestRenderRankingNoRows(t *testing.T) {
	out := renderRanking("Genre", "Movies", nil)
	if !strings.Contains(out, "GENRE") || !strings.Contains(out, "MOVIES") {
		t.Errorf("header expected even with no rows:\n%s", out)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestDataset(t *testing.T) string {
	t.Helper()
	content := "title,genre,overview,rating\n" +
		"The Godfather,\"Crime, Drama\",An aging mafia patriarch transfers control of his empire,9.2\n" +
		"Goodfellas,\"Crime, Drama\",The rise and fall of a mob associate inside the mafia empire,8.7\n" +
		"Airplane!,Comedy,A spoof of airplane disaster films,7.7\n"
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenresCommand(t *testing.T) {
	dataset := writeTestDataset(t)

	output, err := execute(t, "genres", "--dataset", dataset)
	if err != nil {
		t.Fatalf("genres failed: %v", err)
	}
	for _, genre := range []string{"Comedy", "Crime", "Drama"} {
		if !strings.Contains(output, genre) {
			t.Errorf("missing genre %q in output:\n%s", genre, output)
		}
	}
}

func TestSimilarCommand(t *testing.T) {
	dataset := writeTestDataset(t)

	output, err := execute(t, "similar", "The Godfather", "--dataset", dataset, "-n", "2")
	if err != nil {
		t.Fatalf("similar failed: %v", err)
	}
	if !strings.Contains(output, "Goodfellas") {
		t.Errorf("expected Goodfellas among matches:\n%s", output)
	}
	if strings.Contains(output, "The Godfather") {
		t.Errorf("query title must not appear as its own match:\n%s", output)
	}
}

func TestSimilarCommandUnknownTitle(t *testing.T) {
	dataset := writeTestDataset(t)

	if _, err := execute(t, "similar", "Nope", "--dataset", dataset); err == nil {
		t.Fatal("expected error for unknown title")
	}
}

func TestMissingDatasetFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.csv")

	if _, err := execute(t, "genres", "--dataset", missing); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	output, err := execute(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, target) {
		t.Errorf("output should name the target path:\n%s", output)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	// A second init without --force must refuse to clobber.
	if _, err := execute(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when file exists")
	}
	if _, err := execute(t, "config", "init", "--path", target, "--force"); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}
}

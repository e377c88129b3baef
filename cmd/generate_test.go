package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"quizforge/internal/quizgen"
)

func flagsCmd(stdin string) *cobra.Command {
	c := &cobra.Command{}
	addGenerateFlags(c)
	c.SetIn(strings.NewReader(stdin))
	return c
}

func TestRequestFromFlags_Defaults(t *testing.T) {
	c := flagsCmd("some source text")
	req, seed, err := requestFromFlags(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Type != quizgen.TypeMCQ || req.Difficulty != quizgen.DifficultyMedium {
		t.Errorf("defaults = %s/%s, want mcq/medium", req.Type, req.Difficulty)
	}
	if req.Count != 5 || req.Role != quizgen.RoleStudent {
		t.Errorf("count/role = %d/%s", req.Count, req.Role)
	}
	if req.Text != "some source text" {
		t.Errorf("Text = %q", req.Text)
	}
	if seed != 0 {
		t.Errorf("seed = %d, want 0", seed)
	}
}

func TestRequestFromFlags_Validation(t *testing.T) {
	tests := []struct {
		name  string
		flag  string
		value string
	}{
		{"bad type", "type", "truefalse"},
		{"bad difficulty", "difficulty", "brutal"},
		{"bad role", "role", "parent"},
		{"count too low", "count", "2"},
		{"count too high", "count", "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := flagsCmd("text")
			if err := c.Flags().Set(tt.flag, tt.value); err != nil {
				t.Fatalf("set flag: %v", err)
			}
			if _, _, err := requestFromFlags(c); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestReadSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("file text"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := flagsCmd("stdin text")
	if err := c.Flags().Set("file", path); err != nil {
		t.Fatal(err)
	}
	got, err := readSource(c)
	if err != nil {
		t.Fatalf("readSource: %v", err)
	}
	if got != "file text" {
		t.Errorf("readSource = %q, want file contents", got)
	}
}

package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dskvich/audio-transcriber/pkg/domain"
)

func TestSaveTranscript(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewTranscriptsRepository(dir)
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}

	path, err := repo.SaveTranscript(domain.Transcript{FileName: "meeting.mp3", Text: "verbatim text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := filepath.Join(dir, "meeting_transcription.txt")
	if path != expected {
		t.Errorf("expected path %q, got %q", expected, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "verbatim text" {
		t.Errorf("expected file content %q, got %q", "verbatim text", data)
	}
}

func TestSaveEnhancedNames(t *testing.T) {
	tests := []struct {
		name     string
		mode     domain.EnhanceMode
		expected string
	}{
		{"readability", domain.ModeReadability, "talk_enhanced.txt"},
		{"interview", domain.ModeInterview, "talk_enhanced_interview.txt"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			repo, err := NewTranscriptsRepository(dir)
			if err != nil {
				t.Fatalf("creating repository: %v", err)
			}

			path, err := repo.SaveEnhanced("talk.wav", domain.EnhancedTranscript{Mode: test.mode, Text: "enhanced"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filepath.Base(path) != test.expected {
				t.Errorf("expected file name %q, got %q", test.expected, filepath.Base(path))
			}
		})
	}
}

func TestSaveEnhancedUnknownMode(t *testing.T) {
	repo, err := NewTranscriptsRepository(t.TempDir())
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}

	if _, err := repo.SaveEnhanced("talk.wav", domain.EnhancedTranscript{Mode: "summary"}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestNewTranscriptsRepositoryCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if _, err := NewTranscriptsRepository(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected output dir created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %q to be a directory", dir)
	}
}

package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dskvich/audio-transcriber/pkg/domain"
)

type fakeProcessor struct {
	mu       sync.Mutex
	seen     []string
	failFile string
}

func (p *fakeProcessor) Process(_ context.Context, source domain.AudioSource) domain.FileReport {
	p.mu.Lock()
	p.seen = append(p.seen, source.FileName())
	p.mu.Unlock()

	if source.FileName() == p.failFile {
		return domain.FileReport{
			FileName: source.FileName(),
			Err:      &domain.SegmentationError{Path: source.Path, Err: errors.New("unsupported container")},
		}
	}
	return domain.FileReport{
		FileName: source.FileName(),
		Outputs:  []string{source.FileName() + "_transcription.txt"},
	}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
}

func TestScanFolder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.mp3", "a.WAV", "c.m4a", "notes.txt", "image.png")
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0o755); err != nil {
		t.Fatalf("creating subdir: %v", err)
	}

	sources, err := ScanFolder(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sources) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(sources))
	}
	expected := []struct {
		name   string
		format domain.AudioFormat
	}{
		{"a.WAV", domain.FormatWAV},
		{"b.mp3", domain.FormatMP3},
		{"c.m4a", domain.FormatM4A},
	}
	for i, e := range expected {
		if sources[i].FileName() != e.name {
			t.Errorf("source %d: expected %q, got %q", i, e.name, sources[i].FileName())
		}
		if sources[i].Format != e.format {
			t.Errorf("source %d: expected format %q, got %q", i, e.format, sources[i].Format)
		}
		if sources[i].SizeBytes != 4 {
			t.Errorf("source %d: expected size 4, got %d", i, sources[i].SizeBytes)
		}
	}
}

func TestScanFolderMissingDir(t *testing.T) {
	if _, err := ScanFolder(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing folder")
	}
}

func TestBatchContinuesPastFailedFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "one.mp3", "two.mp3", "three.mp3")

	processor := &fakeProcessor{failFile: "two.mp3"}
	b, err := NewBatchProcessor(dir, processor, 1)
	if err != nil {
		t.Fatalf("creating batch processor: %v", err)
	}

	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("a single bad file must not fail the batch: %v", err)
	}

	if len(processor.seen) != 3 {
		t.Errorf("expected all 3 files processed, got %v", processor.seen)
	}
}

func TestBatchAllFilesFailed(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "only.mp3")

	processor := &fakeProcessor{failFile: "only.mp3"}
	b, err := NewBatchProcessor(dir, processor, 1)
	if err != nil {
		t.Fatalf("creating batch processor: %v", err)
	}

	if err := b.Start(context.Background()); err == nil {
		t.Fatal("expected error when every file failed")
	}
}

func TestBatchEmptyFolder(t *testing.T) {
	b, err := NewBatchProcessor(t.TempDir(), &fakeProcessor{}, 1)
	if err != nil {
		t.Fatalf("creating batch processor: %v", err)
	}

	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error for empty folder: %v", err)
	}
}

func TestBatchConcurrentPool(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.mp3", "b.mp3", "c.mp3", "d.mp3")

	processor := &fakeProcessor{}
	b, err := NewBatchProcessor(dir, processor, 4)
	if err != nil {
		t.Fatalf("creating batch processor: %v", err)
	}

	if err := b.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(processor.seen) != 4 {
		t.Errorf("expected 4 files processed, got %d", len(processor.seen))
	}
}

package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/dskvich/audio-transcriber/pkg/domain"
	"github.com/dskvich/audio-transcriber/pkg/logger"
)

type FileProcessor interface {
	Process(ctx context.Context, source domain.AudioSource) domain.FileReport
}

type batchProcessor struct {
	inputDir  string
	processor FileProcessor
	poolSize  int
}

// NewBatchProcessor processes every supported audio file found in inputDir.
// Files are independent, so up to poolSize of them run concurrently; one bad
// file never aborts the batch.
func NewBatchProcessor(inputDir string, processor FileProcessor, poolSize int) (*batchProcessor, error) {
	if poolSize < 1 {
		poolSize = 1
	}
	return &batchProcessor{
		inputDir:  inputDir,
		processor: processor,
		poolSize:  poolSize,
	}, nil
}

func (b *batchProcessor) Name() string { return "batch_processor" }

func (b *batchProcessor) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", b.Name())
	defer slog.Info("Worker stopped", "name", b.Name())

	sources, err := ScanFolder(b.inputDir)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		slog.Warn("No supported audio files found", "dir", b.inputDir)
		return nil
	}

	reports := make([]domain.FileReport, len(sources))

	sem := make(chan struct{}, b.poolSize)
	var wg sync.WaitGroup
	for i, source := range sources {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, source domain.AudioSource) {
			defer func() { <-sem; wg.Done() }()

			fileCtx := logger.ContextWithFileID(ctx, source.FileName())
			slog.InfoContext(fileCtx, "Processing audio file", "sizeBytes", source.SizeBytes, "format", string(source.Format))
			reports[i] = b.processor.Process(fileCtx, source)
		}(i, source)
	}
	wg.Wait()

	return summarize(reports)
}

// summarize logs the per-file outcome and returns an error only when every
// file in the batch failed.
func summarize(reports []domain.FileReport) error {
	var batchErr error
	failed := 0
	for _, r := range reports {
		if r.Failed() {
			failed++
			batchErr = multierror.Append(batchErr, fmt.Errorf("%s: %w", r.FileName, r.Err))
			slog.Error("File failed, no outputs produced", "file", r.FileName, logger.Err(r.Err))
			continue
		}
		slog.Info("File processed", "file", r.FileName, "outputs", len(r.Outputs))
		for mode, err := range r.EnhanceErrs {
			slog.Warn("Output skipped", "file", r.FileName, "mode", string(mode), logger.Err(err))
		}
	}

	slog.Info("Batch complete", "files", len(reports), "failed", failed)

	if failed == len(reports) {
		return fmt.Errorf("all %d files failed: %w", len(reports), batchErr)
	}
	return nil
}

// ScanFolder lists the supported audio files directly inside dir, sorted by
// name. Subdirectories and files with other extensions are ignored.
func ScanFolder(dir string) ([]domain.AudioSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input folder: %w", err)
	}

	var sources []domain.AudioSource
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, ok := domain.FormatFromPath(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("reading file info for %s: %w", entry.Name(), err)
		}
		sources = append(sources, domain.AudioSource{
			Path:      filepath.Join(dir, entry.Name()),
			SizeBytes: info.Size(),
			Format:    format,
		})
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })

	return sources, nil
}

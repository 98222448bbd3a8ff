package splitter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dskvich/audio-transcriber/pkg/domain"
	"github.com/dskvich/audio-transcriber/pkg/logger"
)

const (
	// DefaultMaxBytes is the upload size above which a source is split.
	// The API caps uploads at 25 MB; 20 MB leaves headroom for VBR sources.
	DefaultMaxBytes = 20 * 1024 * 1024

	// DefaultMaxChunkDuration caps the chunk length and doubles as the
	// fallback when the size-proportional estimate is degenerate.
	DefaultMaxChunkDuration = 5 * time.Minute
)

type DurationProber interface {
	ProbeDuration(ctx context.Context, source domain.AudioSource) (time.Duration, error)
}

type ChunkExtractor interface {
	Extract(ctx context.Context, srcPath, dstPath string, start, duration time.Duration) error
}

type splitter struct {
	prober    DurationProber
	extractor ChunkExtractor
	maxBytes  int64
	maxChunk  time.Duration
}

func New(prober DurationProber, extractor ChunkExtractor, maxBytes int64, maxChunk time.Duration) *splitter {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxChunk <= 0 {
		maxChunk = DefaultMaxChunkDuration
	}
	return &splitter{
		prober:    prober,
		extractor: extractor,
		maxBytes:  maxBytes,
		maxChunk:  maxChunk,
	}
}

// Split divides the source into transcribable segments. Sources at or under
// the size threshold yield a single synthetic segment pointing at the
// original file; nothing is probed or written. Oversize sources are cut into
// contiguous chunks written under a temp directory which the returned cleanup
// removes. Cleanup is safe to call on every exit path.
func (s *splitter) Split(ctx context.Context, source domain.AudioSource) ([]domain.Segment, func(), error) {
	noop := func() {}

	if source.SizeBytes <= s.maxBytes {
		return []domain.Segment{domain.WholeFileSegment(source.Path)}, noop, nil
	}

	total, err := s.prober.ProbeDuration(ctx, source)
	if err != nil {
		return nil, noop, &domain.SegmentationError{Path: source.Path, Err: fmt.Errorf("probing duration: %w", err)}
	}
	if total <= 0 {
		return nil, noop, &domain.SegmentationError{Path: source.Path, Err: fmt.Errorf("source reports duration %v", total)}
	}

	chunk := chunkDuration(total, source.SizeBytes, s.maxBytes, s.maxChunk)
	spans := planChunks(total, chunk)

	dir, err := os.MkdirTemp("", "segments-*")
	if err != nil {
		return nil, noop, &domain.SegmentationError{Path: source.Path, Err: fmt.Errorf("creating temp directory: %w", err)}
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			slog.Warn("removing segment temp directory", "dir", dir, logger.Err(err))
		}
	}

	slog.Info("Splitting oversize audio file",
		"path", source.Path, "sizeBytes", source.SizeBytes, "duration", total.String(),
		"chunkDuration", chunk.String(), "segments", len(spans))

	ext := filepath.Ext(source.Path)
	segments := make([]domain.Segment, 0, len(spans))
	for i, sp := range spans {
		dst := filepath.Join(dir, fmt.Sprintf("segment_%03d%s", i, ext))
		if err := s.extractor.Extract(ctx, source.Path, dst, sp.start, sp.end-sp.start); err != nil {
			cleanup()
			return nil, noop, &domain.SegmentationError{Path: source.Path, Err: fmt.Errorf("extracting segment %d: %w", i, err)}
		}
		segments = append(segments, domain.Segment{Index: i, Start: sp.start, End: sp.end, Path: dst})
	}

	return segments, cleanup, nil
}

// chunkDuration scales the total duration so each chunk's expected byte size
// stays under maxBytes, capped at maxChunk. A degenerate estimate (zero or
// negative inputs) falls back to maxChunk.
func chunkDuration(total time.Duration, sizeBytes, maxBytes int64, maxChunk time.Duration) time.Duration {
	if total <= 0 || sizeBytes <= 0 {
		return maxChunk
	}
	est := time.Duration(float64(total) * float64(maxBytes) / float64(sizeBytes))
	if est <= 0 || est > maxChunk {
		return maxChunk
	}
	return est
}

type span struct {
	start time.Duration
	end   time.Duration
}

// planChunks computes contiguous, non-overlapping chunk boundaries covering
// [0, total). The count is ceil(total/chunk); only the last span may be
// shorter than chunk.
func planChunks(total, chunk time.Duration) []span {
	var spans []span
	for start := time.Duration(0); start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}

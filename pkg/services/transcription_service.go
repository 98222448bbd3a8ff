package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dskvich/audio-transcriber/pkg/assembler"
	"github.com/dskvich/audio-transcriber/pkg/domain"
	"github.com/dskvich/audio-transcriber/pkg/logger"
)

type Segmenter interface {
	Split(ctx context.Context, source domain.AudioSource) ([]domain.Segment, func(), error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

type Enhancer interface {
	Enhance(ctx context.Context, transcript domain.Transcript, mode domain.EnhanceMode) (domain.EnhancedTranscript, error)
}

type TranscriptRepository interface {
	SaveTranscript(transcript domain.Transcript) (string, error)
	SaveEnhanced(fileName string, enhanced domain.EnhancedTranscript) (string, error)
}

type transcriptionService struct {
	segmenter   Segmenter
	transcriber Transcriber
	enhancer    Enhancer
	repo        TranscriptRepository
	modes       []domain.EnhanceMode
	poolSize    int
}

func NewTranscriptionService(
	segmenter Segmenter,
	transcriber Transcriber,
	enhancer Enhancer,
	repo TranscriptRepository,
	modes []domain.EnhanceMode,
	poolSize int,
) *transcriptionService {
	if poolSize < 1 {
		poolSize = 1
	}
	return &transcriptionService{
		segmenter:   segmenter,
		transcriber: transcriber,
		enhancer:    enhancer,
		repo:        repo,
		modes:       modes,
		poolSize:    poolSize,
	}
}

// Process runs the full pipeline for one audio file: split, transcribe every
// segment, assemble, save the verbatim transcript, then each requested
// enhancement mode. Failures stay inside the returned report; the batch loop
// decides continuation.
func (s *transcriptionService) Process(ctx context.Context, source domain.AudioSource) domain.FileReport {
	report := domain.FileReport{
		FileName:    source.FileName(),
		EnhanceErrs: make(map[domain.EnhanceMode]error),
	}

	segments, cleanup, err := s.segmenter.Split(ctx, source)
	if err != nil {
		report.Err = err
		return report
	}
	defer cleanup()

	results := s.transcribeAll(ctx, segments)

	transcript, err := assembler.Assemble(report.FileName, results)
	if err != nil {
		report.Err = err
		return report
	}

	path, err := s.repo.SaveTranscript(transcript)
	if err != nil {
		report.Err = fmt.Errorf("saving transcript: %w", err)
		return report
	}
	report.Outputs = append(report.Outputs, path)
	slog.InfoContext(ctx, "Verbatim transcription saved", "path", path)

	for _, mode := range s.modes {
		enhanced, err := s.enhancer.Enhance(ctx, transcript, mode)
		if err != nil {
			slog.WarnContext(ctx, "Enhancement failed", "mode", string(mode), logger.Err(err))
			report.EnhanceErrs[mode] = err
			continue
		}

		path, err := s.repo.SaveEnhanced(transcript.FileName, enhanced)
		if err != nil {
			slog.WarnContext(ctx, "Saving enhanced transcript failed", "mode", string(mode), logger.Err(err))
			report.EnhanceErrs[mode] = err
			continue
		}
		report.Outputs = append(report.Outputs, path)
		slog.InfoContext(ctx, "Enhanced transcription saved", "mode", string(mode), "path", path)
	}

	return report
}

// transcribeAll issues segment transcriptions through a bounded pool and
// waits for every result before returning. Results land in a slice position
// per segment, so arrival order never matters.
func (s *transcriptionService) transcribeAll(ctx context.Context, segments []domain.Segment) []domain.SegmentResult {
	results := make([]domain.SegmentResult, len(segments))

	sem := make(chan struct{}, s.poolSize)
	var wg sync.WaitGroup
	for i, seg := range segments {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, seg domain.Segment) {
			defer func() { <-sem; wg.Done() }()

			text, err := s.transcriber.Transcribe(ctx, seg.Path)
			if err != nil {
				results[i] = domain.SegmentResult{Index: seg.Index, Err: fmt.Errorf("transcribing segment %d: %w", seg.Index, err)}
				return
			}
			results[i] = domain.SegmentResult{Index: seg.Index, Text: text}
		}(i, seg)
	}
	wg.Wait()

	return results
}

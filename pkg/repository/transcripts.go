package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dskvich/audio-transcriber/pkg/domain"
)

const transcriptFilePerm = 0o644

const (
	verbatimSuffix    = "_transcription.txt"
	readabilitySuffix = "_enhanced.txt"
	interviewSuffix   = "_enhanced_interview.txt"
)

type transcriptsRepository struct {
	outputDir string
}

// NewTranscriptsRepository persists transcripts as text files under
// outputDir, creating it if missing. Output names derive uniquely from the
// input file name plus a fixed suffix, so no two files share a writer.
func NewTranscriptsRepository(outputDir string) (*transcriptsRepository, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &transcriptsRepository{outputDir: outputDir}, nil
}

func (r *transcriptsRepository) SaveTranscript(transcript domain.Transcript) (string, error) {
	return r.save(transcript.FileName, verbatimSuffix, transcript.Text)
}

func (r *transcriptsRepository) SaveEnhanced(fileName string, enhanced domain.EnhancedTranscript) (string, error) {
	suffix, err := suffixForMode(enhanced.Mode)
	if err != nil {
		return "", err
	}
	return r.save(fileName, suffix, enhanced.Text)
}

func (r *transcriptsRepository) save(fileName, suffix, text string) (string, error) {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	path := filepath.Join(r.outputDir, base+suffix)
	if err := os.WriteFile(path, []byte(text), transcriptFilePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func suffixForMode(mode domain.EnhanceMode) (string, error) {
	switch mode {
	case domain.ModeReadability:
		return readabilitySuffix, nil
	case domain.ModeInterview:
		return interviewSuffix, nil
	default:
		return "", fmt.Errorf("unknown enhance mode: %q", mode)
	}
}

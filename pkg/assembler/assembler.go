package assembler

import (
	"strings"

	"github.com/dskvich/audio-transcriber/pkg/domain"
)

// Assemble joins per-segment transcripts into one verbatim transcript in
// index order, regardless of the order results arrived in. Every index in
// [0, n) must be present with a success payload; otherwise an AssemblyError
// names each missing or failed index and no partial transcript is produced.
func Assemble(fileName string, results []domain.SegmentResult) (domain.Transcript, error) {
	n := len(results)

	texts := make(map[int]string, n)
	for _, r := range results {
		if !r.Failed() {
			texts[r.Index] = r.Text
		}
	}

	var missing []int
	for i := 0; i < n; i++ {
		if _, ok := texts[i]; !ok {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return domain.Transcript{}, &domain.AssemblyError{FileName: fileName, Missing: missing}
	}

	// Single-space join with boundary whitespace collapsed, so re-joining an
	// already-joined single segment is a no-op.
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if t := strings.TrimSpace(texts[i]); t != "" {
			parts = append(parts, t)
		}
	}

	return domain.Transcript{FileName: fileName, Text: strings.Join(parts, " ")}, nil
}

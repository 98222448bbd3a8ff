package domain

import (
	"path/filepath"
	"strings"
	"time"
)

type AudioFormat string

const (
	FormatWAV AudioFormat = "wav"
	FormatMP3 AudioFormat = "mp3"
	FormatM4A AudioFormat = "m4a"
)

// FormatFromPath maps a file extension to a supported audio format.
// Matching is case-insensitive; unsupported extensions report ok=false.
func FormatFromPath(path string) (AudioFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return FormatWAV, true
	case ".mp3":
		return FormatMP3, true
	case ".m4a":
		return FormatM4A, true
	default:
		return "", false
	}
}

// AudioSource is one audio file discovered in the input folder.
type AudioSource struct {
	Path      string
	SizeBytes int64
	Format    AudioFormat
}

func (s AudioSource) FileName() string {
	return filepath.Base(s.Path)
}

// Segment is a time-bounded slice of one audio source. Index is the sole
// ordering key for reassembly. Segments of one source are contiguous,
// non-overlapping and jointly cover the full duration.
type Segment struct {
	Index int
	Start time.Duration
	End   time.Duration
	Path  string
}

// WholeFileSegment is the synthetic segment used when no physical split is
// needed. Its End is zero: the segment spans the entire source file and no
// duration probe was performed.
func WholeFileSegment(path string) Segment {
	return Segment{Index: 0, Path: path}
}

func (s Segment) Duration() time.Duration {
	return s.End - s.Start
}

// SegmentResult carries the transcription outcome for one segment. A non-nil
// Err marks the segment failed; the text is then empty.
type SegmentResult struct {
	Index int
	Text  string
	Err   error
}

func (r SegmentResult) Failed() bool { return r.Err != nil }

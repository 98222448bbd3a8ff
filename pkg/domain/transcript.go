package domain

// Transcript is the verbatim assembled text for one audio file. Immutable
// once produced; enhancement reads it, never rewrites it.
type Transcript struct {
	FileName string
	Text     string
}

type EnhanceMode string

const (
	ModeReadability EnhanceMode = "readability"
	ModeInterview   EnhanceMode = "interview"
)

// EnhancedTranscript is the external-model rewrite of a Transcript for one
// formatting mode. Each mode is produced independently from the same source.
type EnhancedTranscript struct {
	Mode EnhanceMode
	Text string
}

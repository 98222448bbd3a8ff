package domain

// FileReport is the terminal outcome for one audio file in a batch. The
// batch loop consumes it to log what was produced and decide continuation;
// a failed file never aborts the batch.
type FileReport struct {
	FileName string
	// Outputs lists the paths written for this file in the order produced.
	Outputs []string
	// EnhanceErrs records per-mode enhancement failures. They do not affect
	// the verbatim output or the other mode.
	EnhanceErrs map[EnhanceMode]error
	// Err is the terminal per-file failure: segmentation, assembly, or
	// output writing. Nil when the verbatim transcript was produced.
	Err error
}

func (r FileReport) Failed() bool { return r.Err != nil }

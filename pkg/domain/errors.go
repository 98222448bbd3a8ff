package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SegmentationError means one source file could not be decoded or its chunks
// could not be written. It aborts processing of that file only.
type SegmentationError struct {
	Path string
	Err  error
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("segmenting %s: %v", e.Path, e.Err)
}

func (e *SegmentationError) Unwrap() error { return e.Err }

// AssemblyError means one or more segment transcriptions are missing or
// failed. The file is reported failed rather than producing a partial
// transcript; Missing names every absent index.
type AssemblyError struct {
	FileName string
	Missing  []int
}

func (e *AssemblyError) Error() string {
	idx := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		idx[i] = strconv.Itoa(m)
	}
	return fmt.Sprintf("assembling %s: missing segment indices [%s]", e.FileName, strings.Join(idx, " "))
}

// EnhancementError means one enhancement mode failed for one file. The
// verbatim transcript and the other mode are unaffected.
type EnhancementError struct {
	Mode EnhanceMode
	Err  error
}

func (e *EnhancementError) Error() string {
	return fmt.Sprintf("enhancing (%s): %v", e.Mode, e.Err)
}

func (e *EnhancementError) Unwrap() error { return e.Err }

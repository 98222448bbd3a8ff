package splitter

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

type ffmpegExtractor struct{}

func NewFFMpegExtractor() *ffmpegExtractor {
	return &ffmpegExtractor{}
}

// Extract cuts [start, start+duration) out of srcPath into dstPath using a
// stream copy. No re-encoding: chunk boundaries land on the nearest frame,
// which is close enough for speech and keeps extraction fast.
func (e *ffmpegExtractor) Extract(ctx context.Context, srcPath, dstPath string, start, duration time.Duration) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("looking for `ffmpeg`: %w", err)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-hide_banner", "-loglevel", "error",
		"-ss", formatSeconds(start),
		"-t", formatSeconds(duration),
		"-i", srcPath,
		"-c", "copy",
		"-y", dstPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("running `ffmpeg`: %w: %s", err, output)
	}

	return nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}

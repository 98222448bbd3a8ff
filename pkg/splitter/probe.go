package splitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/tcolgate/mp3"

	"github.com/dskvich/audio-transcriber/pkg/domain"
)

type ffprobeProber struct{}

func NewFFProbeProber() *ffprobeProber {
	return &ffprobeProber{}
}

// ProbeDuration reads the container duration via ffprobe. MP3 sources fall
// back to frame decoding when ffprobe is not installed, so the common podcast
// case still works on a bare host.
func (p *ffprobeProber) ProbeDuration(ctx context.Context, source domain.AudioSource) (time.Duration, error) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		if source.Format == domain.FormatMP3 {
			return mp3DurationByFrames(source.Path)
		}
		return 0, fmt.Errorf("looking for `ffprobe`: %w", err)
	}

	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", source.Path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("running `ffprobe`: %w: %s", err, output)
	}

	return parseFFProbeDuration(output)
}

func parseFFProbeDuration(output []byte) (time.Duration, error) {
	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal(output, &probe); err != nil {
		return 0, fmt.Errorf("parsing ffprobe output: %w", err)
	}

	seconds, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing duration %q: %w", probe.Format.Duration, err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// mp3DurationByFrames sums per-frame durations across the whole file. Slower
// than a header read but exact for VBR streams.
func mp3DurationByFrames(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening mp3: %w", err)
	}
	defer f.Close()

	d := mp3.NewDecoder(f)
	var (
		frame   mp3.Frame
		skipped int
		total   time.Duration
	)
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("decoding mp3 frame: %w", err)
		}
		total += frame.Duration()
	}
	return total, nil
}

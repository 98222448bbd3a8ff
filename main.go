package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/dskvich/audio-transcriber/pkg/chatgpt"
	"github.com/dskvich/audio-transcriber/pkg/domain"
	"github.com/dskvich/audio-transcriber/pkg/logger"
	"github.com/dskvich/audio-transcriber/pkg/repository"
	"github.com/dskvich/audio-transcriber/pkg/services"
	"github.com/dskvich/audio-transcriber/pkg/splitter"
	"github.com/dskvich/audio-transcriber/pkg/workers"
)

type Config struct {
	OpenAIToken      string        `env:"OPENAI_API_KEY,required"`
	TranscribeModel  string        `env:"TRANSCRIBE_MODEL" envDefault:"whisper-1"`
	EnhanceModel     string        `env:"ENHANCE_MODEL" envDefault:"gpt-4.1-mini"`
	MaxUploadBytes   int64         `env:"MAX_UPLOAD_BYTES" envDefault:"20971520"`
	MaxChunkDuration time.Duration `env:"MAX_CHUNK_DURATION" envDefault:"5m"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5m"`
	FilePoolSize     int           `env:"FILE_POOL_SIZE" envDefault:"1"`
	SegmentPoolSize  int           `env:"SEGMENT_POOL_SIZE" envDefault:"4"`
}

type options struct {
	inputDir  string
	outputDir string
	enhance   bool
	interview bool
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	var opts options
	flag.StringVar(&opts.inputDir, "input", "", "Path to the folder containing audio files")
	flag.StringVar(&opts.outputDir, "output", "", "Path to the folder where transcriptions will be saved")
	flag.BoolVar(&opts.enhance, "enhance", false, "Enhance transcriptions for better readability")
	flag.BoolVar(&opts.interview, "interview", false, "Format transcriptions as an interview between two people")
	flag.Parse()

	workerGroup, err := setupWorkers(opts)
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers(opts options) (workers.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	if err := validateInputDir(opts.inputDir); err != nil {
		return nil, err
	}
	if opts.outputDir == "" {
		return nil, fmt.Errorf("output folder is required")
	}

	apiClient, err := chatgpt.NewAPIClient(cfg.OpenAIToken, "", cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("creating open ai client: %w", err)
	}

	transcriptsRepository, err := repository.NewTranscriptsRepository(opts.outputDir)
	if err != nil {
		return nil, fmt.Errorf("creating transcripts repository: %w", err)
	}

	audioSplitter := splitter.New(
		splitter.NewFFProbeProber(),
		splitter.NewFFMpegExtractor(),
		cfg.MaxUploadBytes,
		cfg.MaxChunkDuration,
	)

	transcriptionService := services.NewTranscriptionService(
		audioSplitter,
		chatgpt.NewAudioClient(apiClient, cfg.TranscribeModel),
		chatgpt.NewTextClient(apiClient, cfg.EnhanceModel),
		transcriptsRepository,
		enhanceModes(opts.enhance, opts.interview),
		cfg.SegmentPoolSize,
	)

	var workerGroup workers.Group

	batchProcessor, err := workers.NewBatchProcessor(opts.inputDir, transcriptionService, cfg.FilePoolSize)
	if err != nil {
		return nil, fmt.Errorf("creating batch processor: %w", err)
	}
	workerGroup = append(workerGroup, batchProcessor)

	return workerGroup, nil
}

func validateInputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("input folder is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("input folder %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input folder %q is not a directory", dir)
	}
	return nil
}

func enhanceModes(enhance, interview bool) []domain.EnhanceMode {
	var modes []domain.EnhanceMode
	if enhance {
		modes = append(modes, domain.ModeReadability)
	}
	if interview {
		modes = append(modes, domain.ModeInterview)
	}
	return modes
}

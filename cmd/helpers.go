package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/config"
	"github.com/campusnexus/nexus/internal/logging"
	"github.com/campusnexus/nexus/internal/term"
)

// runtime bundles what every command needs after startup.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client *api.Client
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `nexus init` to create a config file", err)
	}
	if langFlag != "" {
		cfg.Language = langFlag
	}
	if urlFlag != "" {
		cfg.BaseURL = strings.TrimRight(urlFlag, "/")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setup loads config and builds the logger and backend client.
func setup() (*runtime, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Console: os.Stderr,
		Verbose: verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	var opts []api.Option
	if cfg.RequestTimeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.RequestTimeout))
	}
	client := api.NewClient(cfg.BaseURL, opts...)

	logger.Debug("configuration loaded",
		zap.String("config", cfgFile),
		zap.String("base_url", cfg.BaseURL),
		zap.String("language", cfg.Language))

	return &runtime{cfg: cfg, logger: logger, client: client}, nil
}

func (rt *runtime) close() {
	_ = rt.logger.Sync()
}

func (rt *runtime) sessionOptions() app.Options {
	return app.Options{
		Language:       rt.cfg.Language,
		TopK:           rt.cfg.TopK,
		UploadTick:     rt.cfg.UploadTick,
		UploadStep:     rt.cfg.UploadStep,
		UploadCap:      rt.cfg.UploadCap,
		NotifyDuration: rt.cfg.NotifyDuration,
		NotifyFade:     rt.cfg.NotifyFade,
		Location:       time.Local,
	}
}

// terminalSession wires a coordinator to a terminal surface on stdout.
func (rt *runtime) terminalSession(reader term.LineReader) (*app.Coordinator, *term.Surface) {
	surface := term.NewSurface(os.Stdout)
	var prompter app.Prompter
	if reader != nil {
		prompter = term.Prompter{Reader: reader}
	}
	coord := app.New(rt.client, surface, prompter, rt.logger, rt.sessionOptions())
	surface.ApplyTranslations(coord.Table())
	return coord, surface
}

// interactive reports whether stdin is a terminal.
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// lineReader picks the promptui editor on a terminal and a plain scanner
// for piped input.
func lineReader() term.LineReader {
	if interactive() {
		return term.PromptReader{}
	}
	return term.NewScanReader(os.Stdin, nil)
}

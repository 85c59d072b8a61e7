package main

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/llehouerou/turntable/internal/app"
	"github.com/llehouerou/turntable/internal/config"
	"github.com/llehouerou/turntable/internal/errmsg"
	"github.com/llehouerou/turntable/internal/ingest"
	"github.com/llehouerou/turntable/internal/logger"
	"github.com/llehouerou/turntable/internal/mpris"
	"github.com/llehouerou/turntable/internal/notify"
	"github.com/llehouerou/turntable/internal/playback"
	"github.com/llehouerou/turntable/internal/player"
	"github.com/llehouerou/turntable/internal/stderr"
)

type flags struct {
	config   string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "turntable [paths...]",
		Short: "A record player for your terminal",
		Long: "Drop a folder of audio files on the drop zone (or pass it as an argument),\n" +
			"drag the record onto the turntable with the mouse, and listen.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(f, args)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "config file (default $XDG_CONFIG_HOME/turntable/config.toml)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

func run(f flags, args []string) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return fail(errmsg.OpConfigLoad, err)
	}

	logCloser, err := logger.Init(cfg.GetLogConfig(f.logLevel))
	if err != nil {
		return fail(errmsg.OpLogInit, err)
	}
	defer logCloser.Close()

	// Capture C library output before the speaker initializes ALSA.
	captured := true
	if err := stderr.Start(); err != nil {
		zlog.Warn().Err(err).Msg("stderr capture unavailable")
		captured = false
	}
	defer stderr.Stop()

	out := player.New()
	engine := playback.New(out)
	defer engine.Close()
	engine.SetVolume(cfg.GetVolume())

	var notifier notify.Notifier
	if cfg.Notifications {
		if notifier, err = notify.New(); err != nil {
			zlog.Warn().Err(err).Msg(errmsg.Format(errmsg.OpNotify, err))
			notifier = nil
		}
	}

	model := app.New(app.Options{
		Engine:        engine,
		Ingester:      ingest.New(afero.NewOsFs(), cfg.GetIngestOptions()),
		Finished:      out.FinishedChan(),
		Hearts:        cfg.GetHeartsConfig(),
		Turntable:     cfg.GetTurntableConfig(),
		Notifier:      notifier,
		Paths:         absPaths(args),
		CaptureStderr: captured,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(engine, func(c mpris.Command) {
			program.Send(app.MPRISMsg{Command: c})
		})
		if err != nil {
			zlog.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRIS, err))
		} else {
			defer adapter.Close()
		}
	}

	zlog.Info().Strs("paths", args).Msg("turntable starting")
	if _, err := program.Run(); err != nil {
		return fail(errmsg.OpInitialize, err)
	}
	return nil
}

// fail logs a startup failure and returns it for cobra to print once the
// real stderr is restored.
func fail(op errmsg.Op, err error) error {
	zlog.Error().Err(err).Msg(errmsg.Format(op, err))
	return errors.Wrap(err, string(op))
}

// absPaths resolves command-line paths against the working directory.
func absPaths(args []string) []string {
	paths := make([]string, 0, len(args))
	for _, a := range args {
		abs, err := filepath.Abs(a)
		if err != nil {
			zlog.Debug().Err(err).Str("path", a).Msg("cannot resolve path")
			continue
		}
		paths = append(paths, abs)
	}
	return paths
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/turntable/internal/hearts"
	"github.com/llehouerou/turntable/internal/ingest"
	"github.com/llehouerou/turntable/internal/logger"
	"github.com/llehouerou/turntable/internal/turntable"
)

type Config struct {
	Audio     AudioConfig     `koanf:"audio"`
	Hearts    HeartsConfig    `koanf:"hearts"`
	Turntable TurntableConfig `koanf:"turntable"`
	Ingest    IngestConfig    `koanf:"ingest"`
	Log       LogConfig       `koanf:"log"`

	// Desktop notification on track change
	Notifications bool `koanf:"notifications"`

	// MPRIS media key integration (default: true, Linux only)
	MPRIS *bool `koanf:"mpris"`
}

// AudioConfig holds output settings.
type AudioConfig struct {
	ContentTypes []string `koanf:"content_types"` // accepted MIME types (default: mpeg, flac, wav, ogg)
	Volume       *float64 `koanf:"volume"`        // initial level 0.0-1.0 (default: 1.0)
}

// HeartsConfig holds the heart emitter settings. Durations are Go duration
// strings such as "400ms".
type HeartsConfig struct {
	SpawnInterval time.Duration `koanf:"spawn_interval"` // default: 400ms
	PruneInterval time.Duration `koanf:"prune_interval"` // default: 1s
	Cap           int           `koanf:"cap"`            // most recent hearts kept (default: 30)
	Expire        *bool         `koanf:"expire"`         // also drop finished hearts (default: true)
}

// TurntableConfig holds the spinning animation settings.
type TurntableConfig struct {
	Tick            time.Duration `koanf:"tick"`              // default: 300ms
	NeedleBobChance *float64      `koanf:"needle_bob_chance"` // 0.0-1.0 (default: 0.35)
}

// IngestConfig holds folder walk settings.
type IngestConfig struct {
	Workers      int  `koanf:"workers"`       // concurrent reads (default: 8)
	FollowHidden bool `koanf:"follow_hidden"` // walk dot-files and dot-directories
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error (default: info)
	Output string `koanf:"output"` // file, stdout, stderr, none (default: file)
	File   string `koanf:"file"`   // default: $XDG_STATE_HOME/turntable/turntable.log
}

// Load reads the config files. With an explicit path only that file is
// read and it must exist; otherwise the XDG config file and ./config.toml
// are read if present, the latter winning.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	paths := getConfigPaths()
	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, errors.Wrapf(err, "config file %s", explicit)
		}
		paths = []string{explicit}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "parse %s", path)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	for i, ct := range cfg.Audio.ContentTypes {
		cfg.Audio.ContentTypes[i] = strings.ToLower(strings.TrimSpace(ct))
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/turntable/config.toml
		filepath.Join(xdg.ConfigHome, "turntable", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// MPRISEnabled reports whether the media key integration should start.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetVolume returns the initial output level with defaults applied.
func (c *Config) GetVolume() float64 {
	if c.Audio.Volume == nil {
		return 1.0
	}
	return min(max(*c.Audio.Volume, 0), 1)
}

// GetHeartsConfig returns the heart emitter configuration with defaults applied.
func (c *Config) GetHeartsConfig() hearts.Config {
	cfg := hearts.DefaultConfig()
	if c.Hearts.SpawnInterval > 0 {
		cfg.SpawnInterval = c.Hearts.SpawnInterval
	}
	if c.Hearts.PruneInterval > 0 {
		cfg.PruneInterval = c.Hearts.PruneInterval
	}
	if c.Hearts.Cap > 0 {
		cfg.Cap = c.Hearts.Cap
	}
	if c.Hearts.Expire != nil {
		cfg.Expire = *c.Hearts.Expire
	}
	return cfg
}

// GetTurntableConfig returns the animation configuration with defaults applied.
func (c *Config) GetTurntableConfig() turntable.Config {
	cfg := turntable.DefaultConfig()
	if c.Turntable.Tick > 0 {
		cfg.Tick = c.Turntable.Tick
	}
	if p := c.Turntable.NeedleBobChance; p != nil && *p >= 0 && *p <= 1 {
		cfg.NeedleBobChance = *p
	}
	return cfg
}

// GetIngestOptions returns the folder walk options with defaults applied.
func (c *Config) GetIngestOptions() ingest.Options {
	return ingest.Options{
		ContentTypes:  c.Audio.ContentTypes,
		Workers:       c.Ingest.Workers,
		IncludeHidden: c.Ingest.FollowHidden,
	}
}

// GetLogConfig returns the logger configuration. levelOverride, when set,
// replaces the configured level.
func (c *Config) GetLogConfig(levelOverride string) logger.Config {
	cfg := logger.Config{
		Output: c.Log.Output,
		Level:  c.Log.Level,
		File:   c.Log.File,
	}
	if cfg.Output == "" {
		cfg.Output = logger.OutputFile
	}
	if levelOverride != "" {
		cfg.Level = levelOverride
	}
	return cfg
}

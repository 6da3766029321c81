package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the full application configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source" mapstructure:"source"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Generate GenerateConfig `yaml:"generate" mapstructure:"generate"`
	Repo     RepoConfig     `yaml:"repo" mapstructure:"repo"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// SourceConfig configures where the CSV datasets are downloaded from.
type SourceConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	LazyQuotes  bool    `yaml:"lazy_quotes" mapstructure:"lazy_quotes"`
	TrimSpace   bool    `yaml:"trim_space" mapstructure:"trim_space"`
}

// OutputConfig configures the artifact output directory.
type OutputConfig struct {
	Dir         string `yaml:"dir" mapstructure:"dir"`
	Compression string `yaml:"compression" mapstructure:"compression"`
	Indent      bool   `yaml:"indent" mapstructure:"indent"`
}

// GenerateConfig configures which datasets are generated and how bad rows
// are handled.
type GenerateConfig struct {
	Datasets  []string `yaml:"datasets" mapstructure:"datasets"`
	RowPolicy string   `yaml:"row_policy" mapstructure:"row_policy"`
}

// RepoConfig configures the repository-change check.
type RepoConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	GitPath string `yaml:"git_path" mapstructure:"git_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	// File, when set, also writes JSON logs to a size-rotated file.
	File       string `yaml:"file" mapstructure:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AIRDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.base_url", "https://davidmegginson.github.io/ourairports-data")
	v.SetDefault("source.user_agent", "airdata-cli/1.0")
	v.SetDefault("source.timeout_secs", 0)
	v.SetDefault("source.rate_limit", 5.0)
	v.SetDefault("source.lazy_quotes", false)
	v.SetDefault("source.trim_space", false)
	v.SetDefault("output.dir", "output")
	v.SetDefault("output.compression", "none")
	v.SetDefault("output.indent", false)
	v.SetDefault("generate.datasets", []string{})
	v.SetDefault("generate.row_policy", "abort")
	v.SetDefault("repo.dir", ".")
	v.SetDefault("repo.git_path", "git")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 32)
	v.SetDefault("log.max_backups", 3)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}

	if cfg.File != "" {
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				Compress:   true,
			}),
			zapCfg.Level,
		)
		logger = logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	zap.ReplaceGlobals(logger)

	return nil
}

// Validate checks the settings the generate command depends on and reports
// every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Source.BaseURL == "" {
		problems = append(problems, "source.base_url is required")
	}
	if c.Source.TimeoutSecs < 0 {
		problems = append(problems, "source.timeout_secs must be >= 0")
	}
	if c.Source.RateLimit < 0 {
		problems = append(problems, "source.rate_limit must be >= 0")
	}
	if c.Output.Dir == "" {
		problems = append(problems, "output.dir is required")
	}
	switch c.Output.Compression {
	case "", "none", "zstd":
	default:
		problems = append(problems, "output.compression must be one of: none, zstd")
	}
	switch c.Generate.RowPolicy {
	case "abort", "skip":
	default:
		problems = append(problems, "generate.row_policy must be one of: abort, skip")
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. EMPORIUM_LOGGING_LEVEL.
const EnvPrefix = "EMPORIUM"

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Sidebar SidebarConfig
	Logging LoggingConfig
	Tools   ToolsConfig
}

type AppConfig struct {
	Name      string
	Title     string
	Width     float32
	Height    float32
	StartPath string `mapstructure:"start_path"`
}

type SidebarConfig struct {
	Title string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// ToolsConfig is handed to every page unit through its page context.
type ToolsConfig struct {
	// OutputDir is where tool jobs create their workspaces; empty means the OS temp dir
	OutputDir string `mapstructure:"output_dir"`
	// ChunkSizeMB is the default chunk size offered by the file splitter
	ChunkSizeMB int `mapstructure:"chunk_size_mb"`
	// MaxParallel bounds the number of segments or chunks processed at once
	MaxParallel int `mapstructure:"max_parallel"`
}

// ChunkSizeBytes returns the default chunk size in bytes
func (t *ToolsConfig) ChunkSizeBytes() int64 {
	return int64(t.ChunkSizeMB) * 1024 * 1024
}

// WorkspaceRoot returns the configured output directory or the OS temp dir.
func (t *ToolsConfig) WorkspaceRoot() string {
	if t.OutputDir == "" {
		return os.TempDir()
	}
	return t.OutputDir
}

// Load loads configuration from the default locations and the environment.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from file (when non-empty) or from config.yaml in
// the working directory, ./config or the user config dir. Environment variables
// override the file.
func LoadFile(file string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "file-emporium"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail later in the UI.
func (c *Config) Validate() error {
	if c.App.Width <= 0 || c.App.Height <= 0 {
		return fmt.Errorf("invalid window size %vx%v", c.App.Width, c.App.Height)
	}
	if !strings.HasPrefix(c.App.StartPath, "/") {
		return fmt.Errorf("start path %q must begin with /", c.App.StartPath)
	}
	if c.Tools.ChunkSizeMB <= 0 {
		return fmt.Errorf("tools.chunk_size_mb must be positive, got %d", c.Tools.ChunkSizeMB)
	}
	if c.Tools.MaxParallel <= 0 {
		return fmt.Errorf("tools.max_parallel must be positive, got %d", c.Tools.MaxParallel)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "file-emporium")
	v.SetDefault("app.title", "PyroRay's File Emporium")
	v.SetDefault("app.width", 1024)
	v.SetDefault("app.height", 768)
	v.SetDefault("app.start_path", "/")

	v.SetDefault("sidebar.title", "PyroRay's File Emporium")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Tools defaults
	v.SetDefault("tools.output_dir", "")
	v.SetDefault("tools.chunk_size_mb", 10)
	v.SetDefault("tools.max_parallel", 4)
}

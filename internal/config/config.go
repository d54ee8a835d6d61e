package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the demo program's configuration.
type Config struct {
	Program ProgramConfig `mapstructure:"program"`
	Log     LogConfig     `mapstructure:"log"`
	Table   TableConfig   `mapstructure:"table"`
}

type ProgramConfig struct {
	Title      string `mapstructure:"title"`
	Breadcrumb bool   `mapstructure:"breadcrumb"`
	Language   string `mapstructure:"language"`
	Monochrome bool   `mapstructure:"monochrome"`
}

type LogConfig struct {
	Directory string `mapstructure:"directory"`
	File      string `mapstructure:"file"`
	Level     string `mapstructure:"level"`
}

// TableConfig holds presentation settings for the sample table and list.
type TableConfig struct {
	BorderStyle    string `mapstructure:"border_style"`
	WordWrap       bool   `mapstructure:"word_wrap"`
	RowSeparators  bool   `mapstructure:"row_separators"`
	MaxColumnWidth int    `mapstructure:"max_column_width"`
	ListPageSize   int    `mapstructure:"list_page_size"`
}

// Load reads configuration from file and env. Env var overrides use prefix EASYCONSOLE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("program.title", "EasyConsole Demo")
	v.SetDefault("program.breadcrumb", true)
	v.SetDefault("program.language", "en")
	v.SetDefault("program.monochrome", false)
	v.SetDefault("log.directory", "logs")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("table.border_style", "single")
	v.SetDefault("table.word_wrap", true)
	v.SetDefault("table.row_separators", false)
	v.SetDefault("table.max_column_width", 20)
	v.SetDefault("table.list_page_size", 100)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("EASYCONSOLE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "easyconsole"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EASYCONSOLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-panes/internal/debug"
)

// Settings holds the options shared by every command. Precedence is flag,
// then PANES_* environment variable, then config file, then default.
type Settings struct {
	Width   int
	Height  int
	Format  string
	Profile string
	// Debug is a log file path.
	Debug string
	Sync  bool
}

// commonFlags declares the flags bound to Settings.
func commonFlags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Int("width", 0, "screen width, 0 for the terminal width")
	fs.Int("height", 0, "screen height, 0 for the terminal height")
	fs.String("profile", "auto", "color profile: auto, truecolor, 256, 16 or ascii")
	fs.String("debug", "", "append debug messages to this file")
	return fs
}

// loadSettings reads settings. flags may be nil.
func loadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("format", "styled")
	v.SetDefault("profile", "auto")
	v.SetDefault("debug", "")
	v.SetDefault("sync", false)

	v.SetConfigType("toml")

	if path := os.Getenv("PANES_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "panes"))
		v.AddConfigPath(".")
		v.SetConfigName("panes")
	}

	v.SetEnvPrefix("PANES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	// read config file if present
	_ = v.ReadInConfig()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if s.Width < 0 || s.Height < 0 {
		return Settings{}, fmt.Errorf("negative screen size %dx%d", s.Width, s.Height)
	}
	if s.Debug != "" {
		if err := debug.Init(s.Debug); err != nil {
			return Settings{}, err
		}
	}
	return s, nil
}

// parseProfile maps a profile name to a termenv profile. ok is false for
// "auto", which leaves detection to the output.
func parseProfile(name string) (p termenv.Profile, ok bool, err error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, true, nil
	case "256", "ansi256":
		return termenv.ANSI256, true, nil
	case "16", "ansi":
		return termenv.ANSI, true, nil
	case "ascii", "none":
		return termenv.Ascii, true, nil
	}
	return termenv.Ascii, false, fmt.Errorf("unknown color profile %q", name)
}

// parseFlagOverrides converts --flag name=value pairs.
func parseFlagOverrides(raw map[string]string) (map[string]bool, error) {
	out := make(map[string]bool, len(raw))
	for name, value := range raw {
		on, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("flag %s: %w", name, err)
		}
		out[name] = on
	}
	return out, nil
}

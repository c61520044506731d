// Package cli renders ddlkit's terminal output: colored labels, summary
// tables, and status lists when stdout is an interactive terminal, plain
// text when piped or when color is disabled.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// OutputMode says how command output is rendered.
type OutputMode int

const (
	// ModeTTY styles output for an interactive terminal.
	ModeTTY OutputMode = iota
	// ModePlain renders unstyled text for pipes and CI logs.
	ModePlain
)

// Config holds the detected output mode. Commands never set it directly;
// Detect derives it from the environment.
type Config struct {
	Mode OutputMode
}

// Detect returns the configuration for the current environment. Output is
// styled only when stdout is a terminal and neither NO_COLOR
// (https://no-color.org/) nor TERM=dumb asks for plain text.
func Detect() *Config {
	mode := ModePlain
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		mode = ModeTTY
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		mode = ModePlain
	}
	return &Config{Mode: mode}
}

// IsTTY reports whether styled output is active.
func (c *Config) IsTTY() bool {
	return c.Mode == ModeTTY
}

// IsPlain reports whether output is unstyled text.
func (c *Config) IsPlain() bool {
	return c.Mode == ModePlain
}

// Process-wide config, detected lazily.
var defaultCfg *Config

// Default returns the process-wide configuration, detecting it on first
// use.
func Default() *Config {
	if defaultCfg == nil {
		defaultCfg = Detect()
	}
	return defaultCfg
}

// SetDefault replaces the process-wide configuration. Tests use it to
// force a mode.
func SetDefault(cfg *Config) {
	defaultCfg = cfg
}

// EnableColors reports whether the styled-text functions should apply
// their styles.
func EnableColors() bool {
	return Default().IsTTY()
}

// Package cli implements the actions behind the craftcon commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/craftcon/craftcon/internal/config"
	"github.com/craftcon/craftcon/internal/grammar"
	"github.com/craftcon/craftcon/internal/logger"
)

// ConnParams are the connection settings shared by the shell and exec
// commands. Flag values override the config file; empty values keep it.
type ConnParams struct {
	ConfigPath  string
	Address     string
	Password    string
	LogLevel    string
	HistoryFile string
	Timeout     time.Duration
}

// resolveConfig loads the config file (explicit path, else the first one
// found, else built-in defaults) and overlays the flag values.
func resolveConfig(p ConnParams) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = config.Find()
	}

	var cfg *config.Config
	if path == "" {
		cfg = config.Defaults()
	} else {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if p.Address != "" {
		cfg.Address = p.Address
	}
	if p.Password != "" {
		cfg.Password = p.Password
		cfg.PasswordEnv = ""
	}
	if p.LogLevel != "" {
		cfg.LogLevel = p.LogLevel
	}
	if p.HistoryFile != "" {
		cfg.HistoryFile = p.HistoryFile
	}
	if p.Timeout > 0 {
		cfg.Timeout = p.Timeout
	}
	return cfg, nil
}

// resolvePassword returns the session password: config or its environment
// variable first, then an interactive no-echo prompt.
func resolvePassword(cfg *config.Config) (string, error) {
	if pw := cfg.ResolvePassword(); pw != "" {
		return pw, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no password configured and stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, "Enter RCON password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

// defaultHistoryFile places the history under the user cache dir.
func defaultHistoryFile() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(cacheDir, "craftcon", "history")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return ""
	}
	return path
}

// buildRegistry derives the command grammar from a raw help dump, surfacing
// skipped lines as warnings.
func buildRegistry(log *logger.Logger, dump string) *grammar.Registry {
	builder := grammar.NewBuilder()
	builder.AddDump(dump)
	reg := builder.Build()
	for _, w := range reg.Warnings() {
		log.Warn().Str("line", w.Line).Err(w.Err).Msg("Skipped help line")
	}
	log.Debug().Int("commands", reg.Len()).Msg("Derived command grammar")
	return reg
}

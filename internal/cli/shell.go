package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/craftcon/craftcon/internal/logger"
	"github.com/craftcon/craftcon/internal/rcon"
	"github.com/craftcon/craftcon/internal/shell"
)

// helpCommand is sent once at startup to derive the command grammar.
const helpCommand = "/help"

// Shell connects to the server, derives the command grammar from its help
// output, and runs the interactive console until the user exits.
func Shell(ctx context.Context, params ConnParams) error {
	cfg, err := resolveConfig(params)
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, os.Stderr)

	password, err := resolvePassword(cfg)
	if err != nil {
		return err
	}

	client, err := rcon.Dial(ctx, cfg.Address, password, rcon.WithTimeout(cfg.Timeout))
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()
	log.Debug().Str("address", cfg.Address).Msg("Authenticated")

	dump, err := client.Exec(helpCommand)
	if err != nil {
		return fmt.Errorf("failed to fetch help output: %w", err)
	}
	reg := buildRegistry(log, dump)

	history := cfg.HistoryFile
	if history == "" {
		history = defaultHistoryFile()
	}

	fmt.Println(shell.Banner(cfg.Address, reg.Len()))
	sh := shell.New(client, reg, log, shell.Options{HistoryFile: history})
	return sh.Run()
}

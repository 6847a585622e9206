package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/craftcon/craftcon/internal/logger"
	"github.com/craftcon/craftcon/internal/rcon"
	"github.com/craftcon/craftcon/internal/shell"
)

// ExecParams contains parameters for the one-shot exec command
type ExecParams struct {
	Conn ConnParams
	Args []string
}

// Exec sends a single command to the server and prints its response.
func Exec(ctx context.Context, params ExecParams) error {
	if len(params.Args) == 0 {
		return fmt.Errorf("no command given")
	}
	cfg, err := resolveConfig(params.Conn)
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

	cmd := strings.Join(params.Args, " ")
	log.Debug().Str("command", cmd).Msg("Sending command")
	resp, err := client.Exec(cmd)
	if err != nil {
		return err
	}
	fmt.Println(shell.FormatResponse(nil, cmd, resp))
	return nil
}

// Package shell implements the interactive console: a readline loop that
// sends lines to the server and renders completions derived from its grammar.
package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/craftcon/craftcon/internal/complete"
	"github.com/craftcon/craftcon/internal/grammar"
	"github.com/craftcon/craftcon/internal/logger"
)

// Executor sends one raw command line to the server and returns its raw
// text response.
type Executor interface {
	Exec(cmd string) (string, error)
}

// Options configures the interactive shell.
type Options struct {
	// Prompt overrides the default "> " prompt
	Prompt string
	// HistoryFile persists input history between sessions; empty disables it
	HistoryFile string
	// Stdin, Stdout, Stderr default to the process streams
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

// Shell is the interactive loop tying the line editor, the completion
// engine, and the server session together.
type Shell struct {
	exec   Executor
	reg    *grammar.Registry
	engine *complete.Engine
	log    *logger.Logger
	opts   Options
}

// New creates a shell over an authenticated session and a built registry.
func New(exec Executor, reg *grammar.Registry, log *logger.Logger, opts Options) *Shell {
	if opts.Prompt == "" {
		opts.Prompt = promptStyle.Render("> ")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Shell{
		exec:   exec,
		reg:    reg,
		engine: complete.New(reg),
		log:    log,
		opts:   opts,
	}
}

// Run starts the interactive loop and blocks until the user exits.
func (s *Shell) Run() error {
	comp := &completer{engine: s.engine, out: s.opts.Stdout}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.opts.Prompt,
		HistoryFile:     s.opts.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    comp,
		Stdin:           s.opts.Stdin,
		Stdout:          s.opts.Stdout,
		Stderr:          s.opts.Stderr,
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer func() { _ = rl.Close() }()
	comp.out = rl.Stdout()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			return nil
		}

		resp, err := s.exec.Exec(line)
		if err != nil {
			s.log.Error().Str("command", line).Err(err).Msg("Command failed")
			fmt.Fprintf(s.opts.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(s.opts.Stdout, FormatResponse(s.reg, line, resp))
	}
}

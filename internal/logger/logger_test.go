package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("also hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Error().
		Str("line", "/foo <bar").
		Int("pos", 5).
		Err(errors.New("unterminated placeholder")).
		Msg("Skipped help line")

	out := buf.String()
	assert.Contains(t, out, "Skipped help line")
	assert.Contains(t, out, "unterminated placeholder")
	assert.Contains(t, out, "pos")
}

func TestLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("shout", &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerErrNilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Info().Err(nil).Msg("clean")
	assert.NotContains(t, buf.String(), "error=")
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaJSON(t *testing.T) {
	schema := GetSchemaJSON()
	assert.Contains(t, schema, `"$schema"`)
	assert.Contains(t, schema, `"log_level"`)
}

func TestValidateWithSchema_ValidYAML(t *testing.T) {
	content := []byte(`
address: mc.example.com:25575
password_env: RCON_PASSWORD
log_level: debug
timeout: 5s
`)
	result, err := ValidateWithSchema("craftcon.yml", content)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateWithSchema_ValidJSON(t *testing.T) {
	content := []byte(`{"address": "localhost:25575", "log_level": "warn"}`)
	result, err := ValidateWithSchema("craftcon.json", content)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateWithSchema_YAMLSyntaxError(t *testing.T) {
	result, err := ValidateWithSchema("craftcon.yml", []byte("address: [unclosed"))
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidateWithSchema_UnknownKey(t *testing.T) {
	content := []byte("address: localhost:25575\nserver: wrong\n")
	result, err := ValidateWithSchema("craftcon.yml", content)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidateWithSchema_InvalidLogLevel(t *testing.T) {
	content := []byte("log_level: loud\n")
	result, err := ValidateWithSchema("craftcon.yml", content)
	require.NoError(t, err)
	require.False(t, result.Valid)
	assert.Equal(t, "log_level", result.Errors[0].Field)
}

func TestValidateWithSchema_TOML(t *testing.T) {
	path := writeConfig(t, "craftcon.toml", `
address = "mc.example.com:25575"
log_level = "info"
`)
	result, err := ValidateWithSchema(path, nil)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("craftcon.ini", []byte("address = x"))
	assert.Error(t, err)
}

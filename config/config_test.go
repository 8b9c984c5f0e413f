package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, defaultMaxMessageBytes, cfg.MaxMessageBytes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotNil(t, cfg.TypeURLAliases)
	require.NoError(t, cfg.Validate())
}

func TestWithDefaultsKeepsSetFields(t *testing.T) {
	cfg := Config{MaxMessageBytes: 10, LogLevel: "debug"}.WithDefaults()
	assert.Equal(t, 10, cfg.MaxMessageBytes)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse(t *testing.T) {
	data := []byte(`
maxMessageBytes: 1024
logLevel: warn
typeUrlAliases:
  /terra.wasm.v1beta1.MsgExecuteContractCompat: /terra.wasm.v1beta1.MsgExecuteContract
`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.MaxMessageBytes)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t,
		"/terra.wasm.v1beta1.MsgExecuteContract",
		cfg.TypeURLAliases["/terra.wasm.v1beta1.MsgExecuteContractCompat"],
	)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative size":  "maxMessageBytes: -1\n",
		"bad level":      "logLevel: loud\n",
		"relative alias": "typeUrlAliases:\n  foo: /bar\n",
		"chained alias":  "typeUrlAliases:\n  /a: /b\n  /b: /c\n",
		"not yaml":       "maxMessageBytes: [\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chainmsg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, defaultMaxMessageBytes, cfg.MaxMessageBytes)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCreateLogger(t *testing.T) {
	logger, err := Config{LogLevel: "debug", Development: true}.CreateLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = Default().CreateLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

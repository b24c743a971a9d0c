package logx

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/inventory-ledger/internal/config"
)

func TestNew_ProductionWritesJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Environment: config.Production, Writer: &buf})

	l.Debug().Msg("hidden")
	l.Info().Str("action", "refresh").Msg("products refreshed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "refresh", entry["action"])
	assert.Equal(t, "products refreshed", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_DevelopmentWritesConsoleAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Environment: config.Development, Writer: &buf})

	l.Debug().Msg("remote call")

	out := buf.String()
	assert.Contains(t, out, "remote call")
	assert.Contains(t, out, "DBG")
	assert.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}

func TestInit_ReplacesGlobalLogger(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	Init(Options{Environment: config.Production, Writer: &buf})
	log.Info().Msg("started")

	assert.Contains(t, buf.String(), `"message":"started"`)
}

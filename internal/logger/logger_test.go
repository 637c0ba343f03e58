package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_JSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	Logger{Level: "warn", Format: "json"}.SetupWriter(&buf)

	log.Info().Msg("hidden")
	log.Warn().Str("path", "out.kml").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "out.kml", entry["path"])
	assert.Contains(t, entry, "time")
}

func TestSetupWriter_Console(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	Logger{Level: "debug", Format: "console", NoColor: true}.SetupWriter(&buf)

	log.Debug().Int("placemarks", 3).Msg("KML file generated successfully")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "KML file generated successfully")
	assert.Contains(t, out, "placemarks=3")
}

func TestLevelFallback(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, Logger{}.level())
	assert.Equal(t, zerolog.InfoLevel, Logger{Level: "loud"}.level())
	assert.Equal(t, zerolog.TraceLevel, Logger{Level: "TRACE"}.level())
}

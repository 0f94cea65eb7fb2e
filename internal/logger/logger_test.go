package logger_test

import (
	"bytes"
	"testing"

	"codeberg.org/mutker/cpuctl/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.TraceLevel, logger.ParseLevel("trace"))
	assert.Equal(t, logger.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, logger.InfoLevel, logger.ParseLevel("info"))
	assert.Equal(t, logger.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, logger.ErrorLevel, logger.ParseLevel("error"))
	assert.Equal(t, logger.WarnLevel, logger.ParseLevel("bogus"))
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "debug", true)
	defer logger.SetLogLevel(logger.WarnLevel)

	log := logger.New("probe")
	log.Debug().Str("core", "cpu1").Msg("reading frequency")

	out := buf.String()
	assert.Contains(t, out, "reading frequency")
	assert.Contains(t, out, "component=probe")
	assert.Contains(t, out, "core=cpu1")

	buf.Reset()
	log.Trace().Msg("hidden")
	assert.Empty(t, buf.String())
}

package logger_test

import (
	"bytes"
	"testing"

	"cratectl/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Info("adding serde")
	log.Warn("aborting add due to dry run")
	log.Error(zerr.New("manifest not found"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "adding serde")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "manifest not found")
}

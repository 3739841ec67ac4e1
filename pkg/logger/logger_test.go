package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// capture redirect global logger vào buffer, restore khi test xong
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Logger
	origLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = orig
		zerolog.SetGlobalLevel(origLevel)
	})
	return &buf
}

func TestInfoIncludesFields(t *testing.T) {
	buf := capture(t)

	Info("broadcast finished", map[string]interface{}{"sent": 3})

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"sent":3`)
	assert.Contains(t, out, "broadcast finished")
}

func TestWarnIncludesFields(t *testing.T) {
	buf := capture(t)

	Warn("mail send failed", map[string]interface{}{"to": "a@example.com"})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"to":"a@example.com"`)
}

func TestErrorIncludesErr(t *testing.T) {
	buf := capture(t)

	Error("store failed", assert.AnError)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, assert.AnError.Error())
}

func TestDebug(t *testing.T) {
	buf := capture(t)

	Debug("cache miss")

	assert.Contains(t, buf.String(), `"level":"debug"`)
}

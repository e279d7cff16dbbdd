package slogpretty

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer

	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf))

	log.With(slog.String("op", "handlers.event.createEvent.New")).
		Info("event added", slog.String("id", "evt-1"))

	out := buf.String()
	assert.Contains(t, out, "event added")
	assert.Contains(t, out, `"op": "handlers.event.createEvent.New"`)
	assert.Contains(t, out, `"id": "evt-1"`)
}

package log

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func withBufferLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{})

	previous := logger
	logger = l
	t.Cleanup(func() { logger = previous })

	return &buf
}

func TestHelpersWriteFields(t *testing.T) {
	buf := withBufferLogger(t)

	Debug(Fields{"strategy": "naive"}, "Configuration loaded")
	Info(nil, "Server listening")
	Error(Fields{"error": "boom"}, "Error during shutdown")

	out := buf.String()
	assert.Contains(t, out, `"strategy":"naive"`)
	assert.Contains(t, out, `"msg":"Server listening"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestErrorWithTraceID(t *testing.T) {
	buf := withBufferLogger(t)

	assert.Equal(t, "req-1", ErrorWithTraceID(Fields{RequestIDKey: "req-1"}, "failed"))
	assert.Contains(t, buf.String(), `"trace_id":"req-1"`)

	traceID := ErrorWithTraceID(Fields{RequestIDKey: "unknown"}, "failed")
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

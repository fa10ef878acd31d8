package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

const (
	logLevelKey   = "level"
	logMessageKey = "msg"
)

// LogEntry is a single decoded record of a logger produced by
// NewBufferedLogger. Numeric field values are represented as [json.Number].
type LogEntry struct {
	Level   zapcore.Level
	Message string
	Fields  map[string]any
}

// LogBuffer accumulates entries written through the paired logger.
type LogBuffer struct {
	t testing.TB
	b zaptest.Buffer
}

// NewBufferedLogger returns a logger writing JSON entries to an in-memory
// buffer, and the buffer itself. Entries with severity less than minLevel
// are never written. Timestamps are not recorded so that entries stay
// comparable.
func NewBufferedLogger(t testing.TB, minLevel zapcore.Level) (*zap.Logger, *LogBuffer) {
	lb := &LogBuffer{t: t}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.LevelKey = logLevelKey
	encCfg.MessageKey = logMessageKey
	encCfg.TimeKey = zapcore.OmitKey

	zc := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), &lb.b, minLevel)

	return zap.New(zc), lb
}

// Entries decodes and returns everything logged so far, in write order.
func (x *LogBuffer) Entries() []LogEntry {
	lines := x.b.Lines()
	res := make([]LogEntry, len(lines))

	for i := range lines {
		dec := json.NewDecoder(strings.NewReader(lines[i]))
		dec.UseNumber()

		var m map[string]any
		require.NoError(x.t, dec.Decode(&m), i)

		v, ok := m[logLevelKey].(string)
		require.True(x.t, ok, i)

		var err error
		res[i].Level, err = zapcore.ParseLevel(v)
		require.NoError(x.t, err, i)

		v, ok = m[logMessageKey].(string)
		require.True(x.t, ok, i)
		res[i].Message = v

		delete(m, logLevelKey)
		delete(m, logMessageKey)
		res[i].Fields = m
	}

	return res
}

// AssertSingle asserts that log has given entry only.
func (x *LogBuffer) AssertSingle(e LogEntry) {
	require.Equal(x.t, []LogEntry{e}, x.Entries())
}

// AssertContains asserts that log contains given entry.
func (x *LogBuffer) AssertContains(e LogEntry) {
	require.Contains(x.t, x.Entries(), e)
}

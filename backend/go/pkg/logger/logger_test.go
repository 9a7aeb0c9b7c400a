package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"DevOpsFacts/backend/go/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithOutput_JSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput(logrus.InfoLevel, &buf)
	t.Cleanup(func() { Init(logrus.InfoLevel) })

	New("facts_service").Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "facts_service", line["service_name"])
	assert.Contains(t, line, "timestamp")
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	base, hook := test.NewNullLogger()
	parent := FromEntry(logrus.NewEntry(base))

	child := parent.WithField("request_id", "abc")
	child.Info("child")
	parent.Info("parent")

	require.Len(t, hook.Entries, 2)
	assert.Equal(t, "abc", hook.Entries[0].Data["request_id"])
	assert.NotContains(t, hook.Entries[1].Data, "request_id")
}

func TestLogger_WithRequestAndError(t *testing.T) {
	base, hook := test.NewNullLogger()
	l := FromEntry(logrus.NewEntry(base))

	l.WithRequest(models.RequestInfo{Method: "GET", Path: "/api/fact", Status: 200}).
		WithError(errors.New("boom")).
		Error("request failed")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, models.RequestInfo{Method: "GET", Path: "/api/fact", Status: 200}, entry.Data["request_info"])
	assert.Equal(t, models.ErrorInfo{Message: "boom", Type: "*errors.errorString"}, entry.Data["error"])
}

func TestLogger_WithErrorRecordsWrappedType(t *testing.T) {
	base, hook := test.NewNullLogger()
	l := FromEntry(logrus.NewEntry(base))

	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	l.WithError(fmt.Errorf("open config: %w", err)).Error("startup failed")

	info, ok := hook.LastEntry().Data["error"].(models.ErrorInfo)
	require.True(t, ok)
	assert.Equal(t, "*fmt.wrapError", info.Type)
	assert.Contains(t, info.Message, "open config")
}

func TestLogger_DebugRespectsLevel(t *testing.T) {
	base, hook := test.NewNullLogger()
	l := FromEntry(logrus.NewEntry(base)).WithFields(logrus.Fields{"port": 3000, "environment": "test"})

	base.SetLevel(logrus.InfoLevel)
	l.Debug("hidden")
	assert.Empty(t, hook.Entries)

	base.SetLevel(logrus.DebugLevel)
	l.Debug("shown")
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, 3000, hook.LastEntry().Data["port"])
	assert.Equal(t, "test", hook.LastEntry().Data["environment"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("loud"))
}

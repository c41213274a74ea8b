package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/rawpack/internal/config"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)
	defer closeFn()

	log.Info("hidden")
	log.Warn("shown", "path", "/in/a.nef")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "path=/in/a.nef")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Options{Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Info("hello", "n", 3)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.EqualValues(t, 3, rec["n"])
}

func TestNew_FileFanout(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "rawpack.log")
	log, closeFn, err := New(Options{Output: &buf, File: path})
	require.NoError(t, err)

	log.Info("to both")
	require.NoError(t, closeFn())

	assert.Contains(t, buf.String(), "to both")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
	assert.Contains(t, string(data), `"msg":"to both"`)
}

func TestNew_BadOptions(t *testing.T) {
	_, _, err := New(Options{Format: "xml"})
	assert.Error(t, err)
	_, _, err = New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewFromConfig_Nil(t *testing.T) {
	log, closeFn, err := NewFromConfig(nil)
	require.NoError(t, err)
	require.NoError(t, closeFn())
	assert.NotNil(t, log)

	_, _, err = NewFromConfig(&config.Config{Log: config.LogConfig{Format: "yaml"}})
	assert.Error(t, err)
}

package cliutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"single arg", "Hello, %s!", []any{"World"}, "Hello, World!"},
		{"no args", "Simple message", nil, "Simple message"},
		{"multiple args", "%s: %d items, %v active", []any{"Status", 42, true}, "Status: 42 items, true active"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) { return 0, errors.New("simulated write error") }

func TestWritefWriteError(t *testing.T) {
	assert.NotPanics(t, func() { Writef(errorWriter{}, "data: %d", 1) })
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))

	data, err := ReadSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	data, err = ReadSource(StdinPath, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))

	_, err = ReadSource(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

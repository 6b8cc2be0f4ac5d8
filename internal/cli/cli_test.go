package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/hdrift/internal/config"
	"github.com/vburojevic/hdrift/internal/decode"
	"go.uber.org/zap"
)

// testGlobals creates a Globals struct with captured stdout/stderr
func testGlobals(format string) (*Globals, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cfg := config.Default()
	return &Globals{
		Format:       format,
		OnError:      cfg.OnError,
		MaxLineBytes: cfg.MaxLineBytes,
		Stdout:       stdout,
		Stderr:       stderr,
		Config:       cfg,
		Logger:       zap.NewNop(),
		Clock:        clock.NewMock(),
	}, stdout, stderr
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name  string
		files []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"a.json", "b.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			globals, stdout, stderr := testGlobals("text")
			err := (&CLI{Files: tt.files}).Run(globals)

			require.Error(t, err)
			assert.Equal(t, ExitUsage, ExitCode(err))
			assert.Equal(t, "Too few args. Args must be 1.\n", stderr.String())
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_NotFound(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		arg  string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"directory", dir},
		{"missing directory", filepath.Join(dir, "nope", "x.json")},
		{"trailing slash", dir + "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			globals, stdout, stderr := testGlobals("text")
			err := (&CLI{Files: []string{tt.arg}}).Run(globals)

			require.Error(t, err)
			assert.Equal(t, ExitNotFound, ExitCode(err))
			assert.Equal(t, "This file does not exist or is a directory.\n", stderr.String())
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_Success(t *testing.T) {
	path := writeFile(t, "data.json", "{\"a\":1,\"b\":2}\n{\"a\":3,\"b\":4}\n{\"a\":5,\"c\":6}\n")
	globals, stdout, stderr := testGlobals("text")

	err := (&CLI{Files: []string{path}}).Run(globals)
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, ExitCode(err))

	expected := "DATA POINT 1\n> a 1\n> b 2\n" +
		"DATA POINT 2\n> a 3\n> b 4\n" +
		"['a', 'b']\n['a', 'c']\n" +
		"DATA POINT 3\n> a 5\n> c 6\n" +
		"Processed 3 data entries.\n1 different headers found!\n"
	assert.Equal(t, expected, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte("{\"k\":\"v\"}\n"), 0644))
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(origDir))
	})

	globals, stdout, _ := testGlobals("text")
	require.NoError(t, (&CLI{Files: []string{"data.json"}}).Run(globals))
	assert.Equal(t, "DATA POINT 1\n> k v\nProcessed 1 data entries.\n0 different headers found!\n", stdout.String())
}

func TestRun_DecodeError(t *testing.T) {
	t.Run("text keeps earlier output and exits non-zero", func(t *testing.T) {
		path := writeFile(t, "bad.json", "{\"a\":1}\n{\"a\":\n{\"a\":3}\n")
		globals, stdout, stderr := testGlobals("text")

		err := (&CLI{Files: []string{path}}).Run(globals)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, ExitCode(err))

		var de *decode.Error
		require.True(t, errors.As(err, &de))
		assert.Equal(t, 2, de.Line)

		assert.Equal(t, "DATA POINT 1\n> a 1\n", stdout.String())
		assert.Equal(t, "Error: line 2: invalid JSON\n", stderr.String())
	})

	t.Run("ndjson emits an error object", func(t *testing.T) {
		path := writeFile(t, "bad.json", "{\"a\":1}\n[1]\n")
		globals, stdout, _ := testGlobals("ndjson")

		err := (&CLI{Files: []string{path}}).Run(globals)
		require.Error(t, err)

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 2)

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &out))
		assert.Equal(t, "error", out["type"])
		assert.Equal(t, CodeDecode, out["code"])
		assert.Equal(t, "line 2: expected JSON object, got array", out["message"])
		assert.NotEmpty(t, out["hint"])
	})

	t.Run("skip policy continues", func(t *testing.T) {
		path := writeFile(t, "bad.json", "{\"a\":1}\nnope\n{\"a\":3}\n")
		globals, stdout, _ := testGlobals("text")
		globals.OnError = "skip"

		require.NoError(t, (&CLI{Files: []string{path}}).Run(globals))
		assert.Equal(t, "DATA POINT 1\n> a 1\nDATA POINT 2\n> a 3\nProcessed 2 data entries.\n0 different headers found!\n", stdout.String())
	})
}

func TestRun_NDJSON(t *testing.T) {
	path := writeFile(t, "data.json", "{\"a\":1,\"b\":2}\n{\"a\":5,\"c\":[6]}\n")
	globals, stdout, _ := testGlobals("ndjson")
	globals.Signatures = true

	require.NoError(t, (&CLI{Files: []string{path}}).Run(globals))

	var types []string
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &out))
		types = append(types, out["type"].(string))
	}
	assert.Equal(t, []string{"record", "drift", "record", "summary", "signature", "signature"}, types)
}

func TestRun_SignatureTable(t *testing.T) {
	path := writeFile(t, "data.json", "{\"a\":1}\n{\"b\":1}\n")
	globals, stdout, _ := testGlobals("text")
	globals.Signatures = true

	require.NoError(t, (&CLI{Files: []string{path}}).Run(globals))
	out := stdout.String()
	summaryAt := strings.Index(out, "1 different headers found!")
	tableAt := strings.Index(out, "2 distinct header signatures")
	require.GreaterOrEqual(t, summaryAt, 0)
	assert.Greater(t, tableAt, summaryAt)
}

func TestRun_LineTooLong(t *testing.T) {
	path := writeFile(t, "long.json", "{\"a\":\""+strings.Repeat("x", 128)+"\"}\n")
	globals, stdout, stderr := testGlobals("text")
	globals.MaxLineBytes = 32
	globals.Verbose = true

	err := (&CLI{Files: []string{path}}).Run(globals)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "read input")
	assert.Contains(t, stderr.String(), "Hint: Raise --max-line-bytes")
}

func TestNewGlobalsWithConfig(t *testing.T) {
	t.Run("config switches on booleans", func(t *testing.T) {
		cfg := config.Default()
		cfg.Signatures = true
		cfg.Verbose = true

		g := NewGlobalsWithConfig(&CLI{Format: "text", OnError: "abort", MaxLineBytes: 10}, cfg)
		assert.True(t, g.Signatures)
		assert.True(t, g.Verbose)
		assert.Equal(t, 10, g.MaxLineBytes)
		assert.NotNil(t, g.Logger)
	})

	t.Run("empty flags fall back to config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Format = "ndjson"
		cfg.OnError = "skip"

		g := NewGlobalsWithConfig(&CLI{}, cfg)
		assert.Equal(t, "ndjson", g.Format)
		assert.Equal(t, "skip", g.OnError)
		assert.Equal(t, cfg.MaxLineBytes, g.MaxLineBytes)
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitNotFound, ExitCode(&CLIError{ExitCode: ExitNotFound}))
}

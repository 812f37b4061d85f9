package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBadModeClosesLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "flick.log")
	var stderr bytes.Buffer

	code := run([]string{"-log", logPath, "-mode", "bogus"}, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "-mode")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "load config")
	assert.Contains(t, string(data), "bogus")
}

func TestRunBadFlag(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nope"}, &stderr))
	assert.Contains(t, stderr.String(), "usage: flickdemo")
}

func TestRunUnwritableLog(t *testing.T) {
	var stderr bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "missing", "flick.log")
	assert.Equal(t, 1, run([]string{"-log", logPath}, &stderr))
	assert.Contains(t, stderr.String(), "open log file")
}

func TestLoadConfigMode(t *testing.T) {
	cfg, err := loadConfig("", "bounce")
	require.NoError(t, err)
	assert.Equal(t, "bounce", cfg.Mode.String())
}

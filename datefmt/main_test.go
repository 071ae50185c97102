package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.toml")
	err := os.WriteFile(path, []byte(`
timezone = "America/Denver"
locale = "de-DE"

[patterns]
iso = "yyyy-MM-dd'T'HH:mm:ss"
us = "MM/dd/yyyy"
`), 0o644)
	assert.Equal(t, nil, err)

	cfg, err := loadConfig(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, "America/Denver", cfg.Timezone)
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, "yyyy-MM-dd'T'HH:mm:ss", resolvePattern(cfg, "iso"))
	assert.Equal(t, "MM/dd/yyyy", resolvePattern(cfg, "us"))

	// unknown aliases pass through as patterns
	assert.Equal(t, "yyyy", resolvePattern(cfg, "yyyy"))
	assert.Equal(t, "yyyy", resolvePattern(nil, "yyyy"))
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NotEqual(t, nil, err)
}

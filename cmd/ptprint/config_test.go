package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexStarov/ptraster-GoLang-lib/printer"
)

func TestLoadPrintConfigExample(t *testing.T) {
	cfg, err := loadPrintConfig("ex.config.toml")
	require.NoError(t, err)

	require.Equal(t, "192.168.0.41", cfg.Address)
	require.Equal(t, printer.Model9800PCN, cfg.Model)
	require.Equal(t, printer.Model9800PCN, cfg.Job.Model)
	require.Equal(t, printer.EncodingRaw, cfg.Job.Encoding)
	require.Equal(t, 8, cfg.Job.TopMargin)
	require.Equal(t, 8, cfg.Job.BottomMargin)
}

func TestLoadPrintConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.toml")
	require.NoError(t, os.WriteFile(path, []byte("address = \"printer.local\"\n"), 0644))

	cfg, err := loadPrintConfig(path)
	require.NoError(t, err)

	require.Equal(t, "printer.local", cfg.Address)
	require.Equal(t, printer.ModelUnknown, cfg.Model, "model left to detection")
	require.Equal(t, printer.DefaultJobConfig(), cfg.Job)
}

func TestLoadPrintConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "full.toml")
	content := `
address = "10.0.0.9"
model = "P950NW"
tiff = true
top_margin = 2
bottom_margin = 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadPrintConfig(path)
	require.NoError(t, err)

	require.Equal(t, printer.ModelP950NW, cfg.Job.Model)
	require.Equal(t, printer.EncodingTIFF, cfg.Job.Encoding)
	require.Equal(t, 2, cfg.Job.TopMargin)
	require.Equal(t, 4, cfg.Job.BottomMargin)
}

func TestLoadPrintConfigRejectsNegativeMargins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("top_margin = -1\n"), 0644))

	_, err := loadPrintConfig(path)
	require.Error(t, err)
}

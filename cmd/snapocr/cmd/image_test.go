package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageCommand(t *testing.T) {
	assert.NotNil(t, imageCmd)
	assert.True(t, strings.HasPrefix(imageCmd.Use, "image"))
	assert.NotEmpty(t, imageCmd.Short)
	assert.NotEmpty(t, imageCmd.Long)
}

func TestImageCommandHelp(t *testing.T) {
	command := imageCmd
	buf := new(bytes.Buffer)
	command.SetOut(buf)
	command.SetErr(buf)
	err := command.Help()
	require.NoError(t, err)
	output := strings.TrimSpace(buf.String())
	assert.Contains(t, output, "screenshot OCR pipeline")
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "Flags:")
}

func TestImageCommandFlags(t *testing.T) {
	flags := imageCmd.Flags()
	for _, name := range []string{
		"scale", "min-conf", "lang", "gpu", "allowlist",
		"format", "output", "txt", "csv", "overlay",
	} {
		assert.NotNil(t, flags.Lookup(name), "flag %s should exist", name)
	}
}

func TestImageCommandWithoutFile(t *testing.T) {
	err := imageCmd.RunE(imageCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input files")
}

func TestImageCommandUnsupportedFormat(t *testing.T) {
	err := imageCmd.RunE(imageCmd, []string{"notes.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image format")
}

func TestImageCommandExportNeedsSingleInput(t *testing.T) {
	require.NoError(t, imageCmd.Flags().Set("txt", "out.txt"))
	defer func() {
		require.NoError(t, imageCmd.Flags().Set("txt", ""))
	}()

	err := imageCmd.RunE(imageCmd, []string{"a.png", "b.png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single input file")
}

func TestImageCommandWithNonExistentFile(t *testing.T) {
	err := imageCmd.RunE(imageCmd, []string{"/non/existent/file.png"})
	assert.Error(t, err)
}

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand(t *testing.T) {
	assert.NotNil(t, batchCmd)
	assert.True(t, strings.HasPrefix(batchCmd.Use, "batch"))
	assert.NotEmpty(t, batchCmd.Short)
	assert.NotEmpty(t, batchCmd.Long)
}

func TestBatchCommandHelp(t *testing.T) {
	command := batchCmd
	buf := new(bytes.Buffer)
	command.SetOut(buf)
	command.SetErr(buf)
	err := command.Help()
	require.NoError(t, err)
	output := strings.TrimSpace(buf.String())
	assert.Contains(t, output, "worker")
	assert.Contains(t, output, "Usage:")
}

func TestBatchCommandFlags(t *testing.T) {
	flags := batchCmd.Flags()
	for _, name := range []string{"workers", "recursive", "include", "exclude", "format", "output"} {
		assert.NotNil(t, flags.Lookup(name), "flag %s should exist", name)
	}
}

func TestBatchCommandWithoutPaths(t *testing.T) {
	err := batchCmd.RunE(batchCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input paths")
}

func TestBatchCommandRejectsBadFormat(t *testing.T) {
	require.NoError(t, batchCmd.Flags().Set("format", "xml"))
	defer func() {
		require.NoError(t, batchCmd.Flags().Set("format", "text"))
	}()

	err := batchCmd.RunE(batchCmd, []string{"."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be text or csv")
}

func TestBatchCommandMissingPath(t *testing.T) {
	err := batchCmd.RunE(batchCmd, []string{"/non/existent/dir"})
	assert.Error(t, err)
}

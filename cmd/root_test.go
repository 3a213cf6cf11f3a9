package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"serve", "verticals", "render"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "pulseboard", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestVerticalsListCommand_Flags(t *testing.T) {
	require.NotNil(t, verticalsListCmd.Flags().Lookup("feature"))
	require.NotNil(t, verticalsListCmd.Flags().Lookup("regulation"))
}

func TestRenderCommand_Flags(t *testing.T) {
	themeFlag := renderCmd.Flags().Lookup("theme")
	require.NotNil(t, themeFlag)
	assert.Equal(t, "light", themeFlag.DefValue)
	require.NotNil(t, renderCmd.Flags().Lookup("out"))
	require.NotNil(t, renderCmd.Flags().Lookup("tab"))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVerticalsList(t *testing.T) {
	out, err := execute(t, "verticals", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "energy")
	assert.Contains(t, out, "healthcare")
}

func TestVerticalsListFeatureFilter(t *testing.T) {
	out, err := execute(t, "verticals", "list", "--feature", "fraud")
	require.NoError(t, err)
	assert.Contains(t, out, "finance")
	assert.NotContains(t, out, "logistics")
}

func TestVerticalsShow(t *testing.T) {
	out, err := execute(t, "verticals", "show", "energy")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "energy"`)
	assert.Contains(t, out, "frequency-deviation")
}

func TestVerticalsShowUnknown(t *testing.T) {
	_, err := execute(t, "verticals", "show", "aerospace")
	assert.Error(t, err)
}

func TestRenderToStdout(t *testing.T) {
	out, err := execute(t, "render", "energy", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `data-theme="dark"`)
	assert.Contains(t, out, "<svg ")
}

func TestRenderUnknownVertical(t *testing.T) {
	_, err := execute(t, "render", "aerospace")
	assert.Error(t, err)
}

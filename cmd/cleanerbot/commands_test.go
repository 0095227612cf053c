package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStrategiesCommand(t *testing.T) {
	out, err := execute(t, "strategies")
	require.NoError(t, err)
	assert.Equal(t, "1) perimeter\n2) spiral\n3) zigzag\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cleanerbot version ")
}

func TestValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: room\nwidth: 2\nheight: 2\n"), 0644))

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `Scenario "room" is valid`)
}

func TestRunCommand_Headless(t *testing.T) {
	out, err := execute(t, "run", "--headless", "--strategy", "zigzag")
	require.NoError(t, err)
	assert.Contains(t, out, "Done.")
	assert.Contains(t, out, "| Strategy | zigzag |")
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"generate", "datasets", "changed"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "airdata", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestGenerateCommand_Flags(t *testing.T) {
	for _, name := range []string{"datasets", "output", "compression", "row-policy"} {
		flag := generateCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "generate should have --%s flag", name)
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestChangedCommand_Args(t *testing.T) {
	require.NoError(t, changedCmd.Args(changedCmd, nil))
	require.NoError(t, changedCmd.Args(changedCmd, []string{"."}))
	require.Error(t, changedCmd.Args(changedCmd, []string{"a", "b"}))
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guidtrack/guidctl/pkg/cliconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	resetGlobals(t)

	t.Run("writes a starter config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		initOutput, initForce, initInteractive = path, false, false

		stdout, _ := captureOutput(t, func() {
			require.NoError(t, initCmd.RunE(initCmd, nil))
		})
		assert.Contains(t, stdout, "Created "+path)

		cfg, err := cliconfig.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "mock://test.net", cfg.Endpoint)
		assert.True(t, cfg.History.Enabled)
		assert.Equal(t, cliconfig.DefaultHistoryLimit, cfg.History.Limit)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("endpoint: keep\n"), 0o644))
		initOutput, initForce, initInteractive = path, false, false

		err := initCmd.RunE(initCmd, nil)
		assert.ErrorContains(t, err, "file already exists")
	})

	t.Run("force overwrites an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("endpoint: old\n"), 0o644))
		initOutput, initForce, initInteractive = path, true, false

		captureOutput(t, func() {
			require.NoError(t, initCmd.RunE(initCmd, nil))
		})

		cfg, err := cliconfig.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "mock://test.net", cfg.Endpoint)
	})
}

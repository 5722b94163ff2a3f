package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/guidtrack/guidctl/pkg/guid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand(t *testing.T) {
	resetGlobals(t)

	t.Run("prints requested number of guids", func(t *testing.T) {
		generateCount, generatePrefix, jsonOutput = 3, "", false
		stdout, _ := captureOutput(t, func() {
			require.NoError(t, generateCmd.RunE(generateCmd, nil))
		})
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 3)
		for _, g := range lines {
			assert.NoError(t, guid.Validate(g))
		}
	})

	t.Run("prefix forces the first character", func(t *testing.T) {
		generateCount, generatePrefix, jsonOutput = 2, "9", false
		stdout, _ := captureOutput(t, func() {
			require.NoError(t, generateCmd.RunE(generateCmd, nil))
		})
		for _, g := range strings.Split(strings.TrimSpace(stdout), "\n") {
			require.NoError(t, guid.Validate(g))
			assert.Equal(t, byte('9'), g[0])
		}
	})

	t.Run("rejects a non-positive count", func(t *testing.T) {
		generateCount, generatePrefix = 0, ""
		err := generateCmd.RunE(generateCmd, nil)
		assert.ErrorContains(t, err, "count must be at least 1")
	})

	t.Run("rejects a multi-character prefix", func(t *testing.T) {
		generateCount, generatePrefix = 1, "AB"
		err := generateCmd.RunE(generateCmd, nil)
		assert.ErrorContains(t, err, "prefix must be a single character")
	})

	t.Run("rejects a non-hex prefix", func(t *testing.T) {
		generateCount, generatePrefix = 1, "z"
		err := generateCmd.RunE(generateCmd, nil)
		assert.ErrorContains(t, err, "not an upper-case hexadecimal digit")
	})

	t.Run("json output wraps the list", func(t *testing.T) {
		generateCount, generatePrefix, jsonOutput = 2, "", true
		stdout, _ := captureOutput(t, func() {
			require.NoError(t, generateCmd.RunE(generateCmd, nil))
		})
		var out struct {
			GUIDs []string `json:"guids"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		assert.Len(t, out.GUIDs, 2)
	})
}

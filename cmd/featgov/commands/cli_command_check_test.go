package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/featgov/cmd/featgov/internal/clierr"
)

func TestCLICommandCheckPasses(t *testing.T) {
	root := makeRepo(t, map[string]string{
		"apps/web/features/cart.feature": "Feature: Cart\n\n@ready @impl_cart\nScenario: Add item\n",
	})

	out, err := runCLI(t, "check", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, out, "missing-status: 0 observed (limit 0)")
	assert.Contains(t, out, "all checks passed")

	// Gate state lands under .featgov/
	_, err = os.Stat(filepath.Join(root, ".featgov", "last-run.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, ".featgov", "checks", "ready-unlinked.json"))
	assert.NoError(t, err)
}

func TestCLICommandCheckFailsOnIssues(t *testing.T) {
	root := makeRepo(t, map[string]string{
		"apps/web/features/cart.feature": "Feature: Cart\n\nScenario: Untagged\n  When something happens\n",
	})

	out, err := runCLI(t, "check", "--dir", root)
	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))
	assert.Contains(t, out, "missing-status: 1 observed (limit 0)")

	last, readErr := os.ReadFile(filepath.Join(root, ".featgov", "last-run.json"))
	require.NoError(t, readErr)
	assert.Contains(t, string(last), `"status": "fail"`)
	assert.Contains(t, string(last), "missing-status")
}

func TestCLICommandCheckFlagOverridesLimit(t *testing.T) {
	root := makeRepo(t, map[string]string{
		"apps/web/features/cart.feature": "Feature: Cart\n\nScenario: Untagged\n  When something happens\n",
	})

	out, err := runCLI(t, "check", "--dir", root, "--max-missing-status", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "missing-status: 1 observed (limit 1)")
	assert.Contains(t, out, "all checks passed")
}

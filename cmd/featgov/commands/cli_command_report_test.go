package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLICommandReport(t *testing.T) {
	root := makeRepo(t, map[string]string{
		"apps/web/features/cart.feature": "Feature: Cart\n\n@ready @impl_cart\nScenario: Add item\n",
	})

	out, err := runCLI(t, "report", "--dir", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote ")

	data, err := os.ReadFile(filepath.Join(root, "docs", "__generated__", "bdd-governance.md"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "# BDD Governance")
	assert.Contains(t, content, "| web | Cart | `apps/web/features/cart.feature` | 1 | 1 | 0 | 0 | 0 | 0 |")
	assert.Contains(t, content, "| `@impl_cart` | 1 | 1 | 0 | 0 | 0 | 0 |")
}

func TestCLICommandReportCustomOut(t *testing.T) {
	root := makeRepo(t, map[string]string{
		"apps/web/features/cart.feature": "Feature: Cart\n\n@ready @impl_cart\nScenario: Add item\n",
	})

	_, err := runCLI(t, "report", "--dir", root, "--out", "notes/gov.md")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "notes", "gov.md"))
	assert.NoError(t, err)
}

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeCatalogFixture(home))

	stdout, stderr, err := runVendo(t, binaryPath, home, "", "catalog", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "catalog OK: 2 products")

	stdin := "coin 25\ncoin 25\ncoin 25\nbuy 1\nquit\n"
	stdout, stderr, err = runVendo(t, binaryPath, home, stdin, "session")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "role: user")
	assert.Contains(t, stdout, "Enjoy your twix!")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "vendo-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/vendo")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build vendo binary: %s", string(output))
	return binaryPath
}

func runVendo(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeCatalogFixture(home string) error {
	configDir := filepath.Join(home, ".vendo")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	catalog := `version = 1

[[products]]
name = "Sour Patch Kids"
price = 200
amount = 10

[[products]]
name = "twix"
price = 75
amount = 5
`

	return os.WriteFile(filepath.Join(configDir, "catalog.toml"), []byte(catalog), 0o644)
}

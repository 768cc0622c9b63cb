package cli_test

import (
	"bytes"
	"testing"

	"github.com/mvandervelde/bouwlca/internal/cli"
)

// setupCLIHome points BOUWLCA_HOME at an isolated directory so tests never
// touch the real home. The SQLite store and config file land there.
func setupCLIHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("BOUWLCA_HOME", home)
	return home
}

// executeCommand runs the root command with the given args and returns the
// captured stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

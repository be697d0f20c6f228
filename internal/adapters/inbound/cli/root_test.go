package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelens/pagelens/internal/adapters/inbound/cli"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pagelens")
}

func TestRootListsSubcommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"audit", "serve", "mcp", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestAuditRequiresURL(t *testing.T) {
	_, err := execute(t, "audit")
	assert.Error(t, err)
}

func TestUnknownCommandFails(t *testing.T) {
	_, err := execute(t, "grade")
	assert.Error(t, err)
}

// Errors are silenced inside cobra and must reach the caller with their
// message intact, since main is the one place that prints them.
func TestCommandErrorsPropagateToCaller(t *testing.T) {
	_, err := execute(t, "audit")
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())
}

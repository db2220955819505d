package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout, stderr and the
// command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// decodeResponse parses one JSON-mode response envelope.
func decodeResponse(t *testing.T, out string) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "stats")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid format")
}

func TestRoot_ListsCommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"generate", "verify", "solve", "validate", "stats"} {
		require.Contains(t, names, want)
	}
}

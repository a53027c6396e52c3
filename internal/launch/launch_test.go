package launch

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func withLookPath(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	orig := lookPathFn
	lookPathFn = fn
	t.Cleanup(func() { lookPathFn = orig })
}

func withExec(t *testing.T, fn func(string, []string, []string) error) {
	t.Helper()
	orig := execFn
	execFn = fn
	t.Cleanup(func() { execFn = orig })
}

func TestSplit(t *testing.T) {
	cmd, err := Split("firefox  --new-window")
	require.NoError(t, err)
	require.Equal(t, "firefox", cmd.Program)
	require.Equal(t, []string{"--new-window"}, cmd.Args)

	cmd, err = Split(`"/opt/my app/run" -x`)
	require.NoError(t, err)
	require.Equal(t, `"/opt/my`, cmd.Program)
	require.Equal(t, []string{`app/run"`, "-x"}, cmd.Args)
}

func TestSplitEmpty(t *testing.T) {
	for _, line := range []string{"", "   ", "\t\n"} {
		_, err := Split(line)
		require.ErrorIs(t, err, ErrEmptyCommand, "line %q", line)
	}
}

func TestPrepareResolvesProgram(t *testing.T) {
	withLookPath(t, func(name string) (string, error) {
		require.Equal(t, "nautilus", name)
		return "/usr/bin/nautilus", nil
	})
	cmd, err := Prepare("nautilus --new-window")
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/nautilus", cmd.Path)
	require.Equal(t, []string{"nautilus", "--new-window"}, cmd.Argv())
}

func TestPrepareReportsMissingProgram(t *testing.T) {
	withLookPath(t, func(string) (string, error) { return "", exec.ErrNotFound })
	_, err := Prepare("ghost")
	require.ErrorIs(t, err, exec.ErrNotFound)
	require.Contains(t, err.Error(), "ghost")

	_, err = Prepare("")
	require.ErrorIs(t, err, ErrEmptyCommand)
}

func TestExecPassesArgv(t *testing.T) {
	var gotPath string
	var gotArgv []string
	withExec(t, func(path string, argv []string, env []string) error {
		gotPath, gotArgv = path, argv
		return nil
	})
	err := Exec(Command{Program: "firefox", Args: []string{"--new-window"}, Path: "/usr/bin/firefox"})
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/firefox", gotPath)
	require.Equal(t, []string{"firefox", "--new-window"}, gotArgv)
}

func TestExecResolvesUnpreparedCommand(t *testing.T) {
	withLookPath(t, func(string) (string, error) { return "/bin/true", nil })
	var gotPath string
	withExec(t, func(path string, _ []string, _ []string) error {
		gotPath = path
		return nil
	})
	require.NoError(t, Exec(Command{Program: "true"}))
	require.Equal(t, "/bin/true", gotPath)
}

func TestExecWrapsFailure(t *testing.T) {
	boom := errors.New("boom")
	withExec(t, func(string, []string, []string) error { return boom })
	err := Exec(Command{Program: "x", Path: "/bin/x"})
	require.ErrorIs(t, err, boom)
}

func TestDryRun(t *testing.T) {
	var buf bytes.Buffer
	err := DryRun(&buf, Command{Program: "firefox", Args: []string{"--new-window"}, Path: "/usr/bin/firefox"})
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/firefox\n  \"firefox\"\n  \"--new-window\"\n", buf.String())
}

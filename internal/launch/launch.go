// Package launch turns a catalog command line into a running program.
package launch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

// ErrEmptyCommand is returned for command lines with no program token.
var ErrEmptyCommand = errors.New("empty command line")

// Command is a split command line. Path is filled in by Prepare.
type Command struct {
	Program string
	Args    []string
	Path    string
}

// Argv returns the program followed by its arguments.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Program)
	return append(argv, c.Args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Split breaks a command line on runs of whitespace. Quotes and escapes have
// no special meaning, so a quoted path containing spaces is split apart.
func Split(commandLine string) (Command, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{Program: fields[0], Args: fields[1:]}, nil
}

var (
	lookPathFn = exec.LookPath
	environFn  = os.Environ
)

// Prepare splits commandLine and resolves its program on PATH.
func Prepare(commandLine string) (Command, error) {
	cmd, err := Split(commandLine)
	if err != nil {
		return Command{}, err
	}
	path, err := lookPathFn(cmd.Program)
	if err != nil {
		return Command{}, fmt.Errorf("resolve %s: %w", cmd.Program, err)
	}
	cmd.Path = path
	return cmd, nil
}

// Exec replaces the current process with cmd. It only returns on failure.
func Exec(cmd Command) error {
	if cmd.Path == "" {
		prepared, err := Prepare(cmd.String())
		if err != nil {
			return err
		}
		cmd = prepared
	}
	argv := cmd.Argv()
	events.Launch.Exec(cmd.Path, argv)
	if err := execFn(cmd.Path, argv, environFn()); err != nil {
		return fmt.Errorf("exec %s: %w", cmd.Path, err)
	}
	return nil
}

// DryRun writes the argv that Exec would run, one token per line after the
// resolved path.
func DryRun(w io.Writer, cmd Command) error {
	if _, err := fmt.Fprintln(w, cmd.Path); err != nil {
		return err
	}
	for _, arg := range cmd.Argv() {
		if _, err := fmt.Fprintf(w, "  %q\n", arg); err != nil {
			return err
		}
	}
	return nil
}

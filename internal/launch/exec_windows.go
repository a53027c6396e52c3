//go:build windows

package launch

import (
	"os"
	"os/exec"
)

// Windows has no exec(2); start the program detached and let the caller exit.
var execFn = func(path string, argv []string, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Start()
}

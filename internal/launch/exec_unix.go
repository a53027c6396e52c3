//go:build !windows

package launch

import "syscall"

var execFn = syscall.Exec

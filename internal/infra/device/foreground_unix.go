//go:build unix

package device

import (
	"os"
	"syscall"
)

var foregroundSignals = []os.Signal{syscall.SIGCONT}

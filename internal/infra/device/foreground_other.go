//go:build !unix

package device

import "os"

// No job control; foreground events only come from Resume.
var foregroundSignals []os.Signal

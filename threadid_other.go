//go:build !linux

package chrometrace

import "os"

// threadID falls back to the process id on platforms without a cheap
// thread-id syscall. Trace viewers only use the value to group records into
// rows.
func threadID() int {
	return os.Getpid()
}

//go:build linux

package chrometrace

import "golang.org/x/sys/unix"

// threadID returns the kernel thread id of the calling OS thread. Go may move
// a goroutine between threads, so two records from the same goroutine can
// carry different thread ids.
func threadID() int {
	return unix.Gettid()
}

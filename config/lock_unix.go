//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package config

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockFileShared takes a shared (read) lock
func lockFileShared(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_SH)
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

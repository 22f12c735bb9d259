//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockFileShared takes a shared lock on the first byte; flags 0 means shared and blocking
func lockFileShared(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(f.Fd()), 0, 0, 1, 0, ol)
}

func unlockFile(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, 1, 0, ol)
}

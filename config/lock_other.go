//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package config

import "os"

// No advisory locking on this platform; reads are unguarded.
func lockFileShared(f *os.File) error { return nil }

func unlockFile(f *os.File) error { return nil }

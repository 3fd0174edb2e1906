// internal/env/limit_linux.go
//go:build linux

package env

import "golang.org/x/sys/unix"

// MaxSize reports how many bytes the kernel accepts as environment plus
// arguments when spawning a process: a quarter of the stack rlimit,
// never less than the historical 128K.
func MaxSize() int {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &rl); err != nil {
		return fallbackMaxSize
	}
	quarter := rl.Cur / 4
	if quarter > 1<<30 {
		// unlimited stack, cap at something sane
		quarter = 1 << 30
	}
	if int(quarter) < fallbackMaxSize {
		return fallbackMaxSize
	}
	return int(quarter)
}

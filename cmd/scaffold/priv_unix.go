// cmd/scaffold/priv_unix.go
//go:build !windows

package main

import "os"

func runningPrivileged() bool {
	return os.Geteuid() == 0
}

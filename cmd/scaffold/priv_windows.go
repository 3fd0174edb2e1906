// cmd/scaffold/priv_windows.go
//go:build windows

package main

import "golang.org/x/sys/windows"

func runningPrivileged() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

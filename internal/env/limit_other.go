// internal/env/limit_other.go
//go:build !linux && !windows

package env

func MaxSize() int {
	return fallbackMaxSize
}

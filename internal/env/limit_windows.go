// internal/env/limit_windows.go
//go:build windows

package env

// MaxSize reports the Windows environment block limit of 32767
// characters.
func MaxSize() int {
	return 32767
}

// File: ring/pagesize_windows.go
//go:build windows
// +build windows

package ring

import "golang.org/x/sys/windows"

// pageSize returns the system page size for capacity validation.
func pageSize() int {
	return windows.Getpagesize()
}

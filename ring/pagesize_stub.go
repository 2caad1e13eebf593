// File: ring/pagesize_stub.go
//go:build !linux && !windows
// +build !linux,!windows

package ring

import "os"

// pageSize falls back to the runtime-reported page size on platforms
// without a dedicated probe.
func pageSize() int {
	return os.Getpagesize()
}

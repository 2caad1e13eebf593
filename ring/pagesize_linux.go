// File: ring/pagesize_linux.go
//go:build linux
// +build linux

package ring

import "golang.org/x/sys/unix"

// pageSize returns the kernel page size for capacity validation.
func pageSize() int {
	return unix.Getpagesize()
}

// Released under an MIT license. See LICENSE.

//go:build unix

package types

import (
	"golang.org/x/sys/unix"
)

// allocate returns n bytes of zeroed memory that lives outside the Go heap.
func allocate(n int) ([]byte, func([]byte) error, error) {
	if n == 0 {
		return []byte{}, release, nil
	}

	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}

	return b, unix.Munmap, nil
}

func release(_ []byte) error {
	return nil
}

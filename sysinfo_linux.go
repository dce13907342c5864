//go:build linux

package armfeatures

import "golang.org/x/sys/unix"

// KernelRelease returns the kernel release string (e.g., "6.8.0-1012-aws").
func KernelRelease() (string, error) {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uname.Release[:]), nil
}

// Machine returns the hardware identifier reported by uname (e.g., "aarch64").
func Machine() (string, error) {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uname.Machine[:]), nil
}

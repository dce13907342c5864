//go:build !linux

package armfeatures

// KernelRelease returns the kernel release string.
// On non-Linux platforms it always fails with [ErrUnsupportedPlatform].
func KernelRelease() (string, error) {
	return "", ErrUnsupportedPlatform
}

// Machine returns the hardware identifier reported by uname.
// On non-Linux platforms it always fails with [ErrUnsupportedPlatform].
func Machine() (string, error) {
	return "", ErrUnsupportedPlatform
}

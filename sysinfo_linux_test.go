//go:build linux

package armfeatures

import "testing"

func TestKernelRelease(t *testing.T) {
	release, err := KernelRelease()
	if err != nil {
		t.Fatalf("KernelRelease() error = %v", err)
	}
	if release == "" {
		t.Error("KernelRelease() returned empty string")
	}
}

func TestMachine(t *testing.T) {
	machine, err := Machine()
	if err != nil {
		t.Fatalf("Machine() error = %v", err)
	}
	if machine == "" {
		t.Error("Machine() returned empty string")
	}
}

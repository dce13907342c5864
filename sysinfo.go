package armfeatures

import "github.com/klauspost/cpuid/v2"

// CPUDescription returns the CPU brand and vendor as detected by cpuid.
// Either may be empty, arm64 cores rarely expose a brand string.
func CPUDescription() (brand, vendor string) {
	return cpuid.CPU.BrandName, cpuid.CPU.VendorString
}

package armfeatures

import "golang.org/x/sys/cpu"

// hwcapFlag pairs a kernel feature token with the HWCAP bit decoded by x/sys/cpu.
type hwcapFlag struct {
	name string
	set  bool
}

// hwcapFlags lists the bits in HWCAP/HWCAP2 order.
// See arch/arm64/include/uapi/asm/hwcap.h.
func hwcapFlags() []hwcapFlag {
	return []hwcapFlag{
		{"fp", cpu.ARM64.HasFP},
		{"asimd", cpu.ARM64.HasASIMD},
		{"evtstrm", cpu.ARM64.HasEVTSTRM},
		{"aes", cpu.ARM64.HasAES},
		{"pmull", cpu.ARM64.HasPMULL},
		{"sha1", cpu.ARM64.HasSHA1},
		{"sha2", cpu.ARM64.HasSHA2},
		{"crc32", cpu.ARM64.HasCRC32},
		{"atomics", cpu.ARM64.HasATOMICS},
		{"fphp", cpu.ARM64.HasFPHP},
		{"asimdhp", cpu.ARM64.HasASIMDHP},
		{"cpuid", cpu.ARM64.HasCPUID},
		{"asimdrdm", cpu.ARM64.HasASIMDRDM},
		{"jscvt", cpu.ARM64.HasJSCVT},
		{"fcma", cpu.ARM64.HasFCMA},
		{"lrcpc", cpu.ARM64.HasLRCPC},
		{"dcpop", cpu.ARM64.HasDCPOP},
		{"sha3", cpu.ARM64.HasSHA3},
		{"sm3", cpu.ARM64.HasSM3},
		{"sm4", cpu.ARM64.HasSM4},
		{"asimddp", cpu.ARM64.HasASIMDDP},
		{"sha512", cpu.ARM64.HasSHA512},
		{"sve", cpu.ARM64.HasSVE},
		{"asimdfhm", cpu.ARM64.HasASIMDFHM},
		{"dit", cpu.ARM64.HasDIT},
		{"sve2", cpu.ARM64.HasSVE2},
		{"i8mm", cpu.ARM64.HasI8MM},
	}
}

// readHWCAP returns the tokens whose HWCAP bit is set.
// On hosts that are not arm64 every bit reads as unset.
func readHWCAP() *FeatureSet {
	fs := &FeatureSet{}
	for _, f := range hwcapFlags() {
		if f.set {
			fs.Add(f.name)
		}
	}
	return fs
}

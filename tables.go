package armfeatures

// ArchVersions maps each ARM architecture revision to the feature tokens it introduces.
//
// Reference: https://gpages.juszkiewicz.com.pl/arm-socs-table/arm-socs.html
//
// The ARMv8.3 "jsvt" and ARMv9.0 "svesh3" spellings are kept as recorded.
// [Lint] reports both.
var ArchVersions = NewTable("armv", "Supported ARMv Extensions", Generations,
	Entry{"ARMv8.0", []string{"fp", "asimd", "evtstrm", "cpuid", "aes", "crc32", "pmull", "sha1", "sha2", "ssbs", "sb", "dgh"}},
	Entry{"ARMv8.1", []string{"asimdrdm", "atomics"}},
	Entry{"ARMv8.2", []string{"asimddp", "asimdfhm", "asimdhp", "bf16", "dcpodp", "dcpop", "flagm", "fphp", "i8mm", "sha3", "sha512", "sm3", "sm4", "sve", "svebf16", "svef32mm", "svef64mm", "svei8mm", "uscat", "jscvt"}},
	Entry{"ARMv8.3", []string{"fcma", "jsvt", "lrcpc"}},
	Entry{"ARMv8.4", []string{"dit", "ilrcpc", "paca", "pacg"}},
	Entry{"ARMv8.5", []string{"bti", "flagm2", "frint", "mte", "mte3", "rng"}},
	Entry{"ARMv8.6", []string{"ecv"}},
	Entry{"ARMv8.7", []string{"afp", "rpres", "wfxt"}},
	Entry{"ARMv9.0", []string{"sve2", "sveaes", "svebitperm", "svepmull", "svesh3", "svesm4", "svesha3"}},
	Entry{"ARMv9.2", []string{"ebf16", "sme", "smeb16f32", "smef16f32", "smef32f32", "smef64f64", "smefa64", "smei8i32", "smei16i64", "sveebf16"}},
)

// Base token groups shared by the processor families below.
var (
	armv80Base = []string{"fp", "asimd", "evtstrm", "aes", "pmull", "sha1", "sha2", "crc32", "cpuid"}
	armv82Base = append(append([]string{}, armv80Base...),
		"atomics", "fphp", "asimdhp", "asimdrdm", "lrcpc", "dcpop", "asimddp")
	armv84Base = append(append([]string{}, armv82Base...),
		"jscvt", "fcma", "sha3", "sm3", "sm4", "sha512", "asimdfhm", "dit", "uscat", "ilrcpc", "flagm", "ssbs", "paca", "pacg")
	armv90Base = append(append([]string{}, armv84Base...),
		"sb", "dcpodp", "sve", "sve2", "sveaes", "svepmull", "svebitperm", "svesha3", "svesm4",
		"flagm2", "frint", "svei8mm", "svebf16", "i8mm", "bf16", "dgh", "bti")
)

func withTokens(base []string, extra ...string) []string {
	return append(append([]string{}, base...), extra...)
}

// Processors maps vendor processor families to the feature tokens their
// cores report on Linux.
var Processors = NewTable("processors", "Supported Processor Families", Families,
	Entry{"Cortex-A53", withTokens(armv80Base)},
	Entry{"Cortex-A72", withTokens(armv80Base)},
	Entry{"Cortex-A55", withTokens(armv82Base)},
	Entry{"Cortex-A76", withTokens(armv82Base, "ssbs")},
	Entry{"Neoverse-N1", withTokens(armv82Base, "ssbs")},
	Entry{"Neoverse-V1", withTokens(armv84Base,
		"sb", "dcpodp", "sve", "svei8mm", "svebf16", "i8mm", "bf16", "dgh", "rng")},
	Entry{"Apple-M1", withTokens(armv84Base, "sb", "dcpodp", "flagm2", "frint")},
	Entry{"Apple-M2", withTokens(armv84Base, "sb", "dcpodp", "flagm2", "frint", "i8mm", "bf16", "bti", "ecv")},
	Entry{"AmpereOne", withTokens(armv84Base,
		"sb", "dcpodp", "flagm2", "frint", "i8mm", "bf16", "dgh", "rng", "bti", "ecv")},
	Entry{"Neoverse-N2", withTokens(armv90Base)},
	Entry{"Neoverse-V2", withTokens(armv90Base, "rng")},
	Entry{"Cortex-A510", withTokens(armv90Base, "mte", "mte3")},
	Entry{"Cortex-A710", withTokens(armv90Base, "mte", "mte3")},
	Entry{"Cortex-X3", withTokens(armv90Base, "mte", "mte3", "ecv", "afp", "rpres", "wfxt")},
)

// DefaultTables returns the tables used when none are selected explicitly.
func DefaultTables() []*Table {
	return []*Table{ArchVersions}
}

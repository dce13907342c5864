package armfeatures

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultCPUInfoPath is where the kernel exposes per-CPU information.
const DefaultCPUInfoPath = "/proc/cpuinfo"

// maxLineSize bounds a single cpuinfo line. Features lines grow with every
// new HWCAP, well past the bufio.Scanner default.
const maxLineSize = 1 << 20

// featuresKey is the cpuinfo key whose value lists the feature tokens.
const featuresKey = "Features"

// Source identifies where feature tokens are read from.
type Source int

const (
	// SourceCPUInfo reads the "Features" lines of a cpuinfo file.
	SourceCPUInfo Source = iota
	// SourceHWCAP decodes the HWCAP bits of the auxiliary vector.
	// Only the bits golang.org/x/sys/cpu knows about are reported.
	SourceHWCAP
)

var sourceNames = map[Source]string{
	SourceCPUInfo: "cpuinfo",
	SourceHWCAP:   "hwcap",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Source(%d)", s)
}

// SourceValues returns all known sources.
func SourceValues() []Source {
	return []Source{SourceCPUInfo, SourceHWCAP}
}

// ReadCPUInfo reads the feature tokens from the cpuinfo file at path.
// Any failure to open or read the file is returned as a *[SourceError]
// matching [ErrSourceUnavailable].
func ReadCPUInfo(path string) (*FeatureSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Source: SourceCPUInfo, Path: path, Err: err}
	}
	defer f.Close()

	fs, err := ParseCPUInfo(f)
	if err != nil {
		return nil, &SourceError{Source: SourceCPUInfo, Path: path, Err: err}
	}
	return fs, nil
}

// ParseCPUInfo collects the tokens of every "Features" line in r.
// Lines with another key, or without a colon, are skipped.
// The tokens of all Features lines (one per logical CPU) are unioned.
func ParseCPUInfo(r io.Reader) (*FeatureSet, error) {
	fs := &FeatureSet{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) != featuresKey {
			continue
		}
		fs.Add(strings.Fields(value)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return fs, nil
}

package armfeatures

import (
	"fmt"
	"slices"
)

// detectConfig holds the configuration for a detect operation.
type detectConfig struct {
	source      Source
	cpuinfoPath string
	tables      []*Table
	processors  bool
}

// DetectOption configures where features are read from and what they are classified against.
type DetectOption func(*detectConfig)

// WithSource selects the feature source. The default is [SourceCPUInfo].
func WithSource(s Source) DetectOption {
	return func(c *detectConfig) {
		c.source = s
	}
}

// WithCPUInfoPath sets a custom cpuinfo path for [SourceCPUInfo].
// This is primarily for testing; production code uses /proc/cpuinfo.
func WithCPUInfoPath(path string) DetectOption {
	return func(c *detectConfig) {
		c.cpuinfoPath = path
	}
}

// WithTables replaces the default tables with the given ones.
func WithTables(tables ...*Table) DetectOption {
	return func(c *detectConfig) {
		c.tables = append(c.tables, tables...)
	}
}

// WithProcessorTable adds the [Processors] table after the selected tables,
// unless it is already one of them.
func WithProcessorTable() DetectOption {
	return func(c *detectConfig) {
		c.processors = true
	}
}

// Detect reads the feature tokens and classifies them.
// Without options it reads /proc/cpuinfo and classifies against [ArchVersions].
// A source that cannot be read fails the whole run; no partial report is returned.
func Detect(opts ...DetectOption) (*Report, error) {
	cfg := &detectConfig{
		source:      SourceCPUInfo,
		cpuinfoPath: DefaultCPUInfoPath,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tables := cfg.tables
	if len(tables) == 0 {
		tables = DefaultTables()
	}
	if cfg.processors && !slices.Contains(tables, Processors) {
		tables = append(tables, Processors)
	}

	detected, err := readSource(cfg)
	if err != nil {
		return nil, err
	}

	return NewReport(detected, tables...), nil
}

func readSource(cfg *detectConfig) (*FeatureSet, error) {
	switch cfg.source {
	case SourceCPUInfo:
		return ReadCPUInfo(cfg.cpuinfoPath)
	case SourceHWCAP:
		return readHWCAP(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.source)
	}
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/leodido/armfeatures"
	"github.com/leodido/structcli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
)

// Build metadata injected via ldflags.
// When built without ldflags (e.g., plain `go build`), these remain
// at their zero values and the version command omits them gracefully.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	root := rootCmd()

	root.AddCommand(tablesCmd())
	root.AddCommand(lintCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// OutputFormat selects how reports are printed.
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatJSON
)

var formatIdentifiers = map[OutputFormat][]string{
	FormatText: {"text"},
	FormatJSON: {"json"},
}

var sourceIdentifiers = func() map[armfeatures.Source][]string {
	ids := make(map[armfeatures.Source][]string, len(armfeatures.SourceValues()))
	for _, s := range armfeatures.SourceValues() {
		ids[s] = []string{s.String()}
	}
	return ids
}()

// ReportOptions defines flags for the report run of the root command.
type ReportOptions struct {
	CPUInfo    string             `flag:"cpuinfo" flagshort:"c" flagdescr:"Path of the cpuinfo file to read"`
	Source     armfeatures.Source `flag:"source" flagshort:"s" flagdescr:"Feature source (cpuinfo, hwcap)" flagcustom:"true"`
	Processors bool               `flag:"processors" flagshort:"p" flagdescr:"Also classify against the processor family table"`
	Format     OutputFormat       `flag:"format" flagshort:"f" flagdescr:"Output format (text, json)" flagcustom:"true"`
}

func (o *ReportOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func (o *ReportOptions) DefineSource(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*armfeatures.Source)
	return enumflag.New(fieldPtr, "source", sourceIdentifiers, enumflag.EnumCaseInsensitive), descr
}

func (o *ReportOptions) DecodeSource(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}
	return parseSource(s)
}

func (o *ReportOptions) DefineFormat(name, short, descr string, structField reflect.StructField, fieldValue reflect.Value) (pflag.Value, string) {
	fieldPtr := fieldValue.Addr().Interface().(*OutputFormat)
	return enumflag.New(fieldPtr, "format", formatIdentifiers, enumflag.EnumCaseInsensitive), descr
}

func (o *ReportOptions) DecodeFormat(input any) (any, error) {
	s, ok := input.(string)
	if !ok {
		return input, nil
	}
	return parseFormat(s)
}

func rootCmd() *cobra.Command {
	opts := &ReportOptions{CPUInfo: armfeatures.DefaultCPUInfoPath}

	cmd := &cobra.Command{
		Use:   "armfeatures",
		Short: "ARM64 architecture extension and processor family report",
		Long: `armfeatures reads the feature flags the kernel reports for the running CPU
and matches them against reference tables of ARM architecture revisions and
vendor processor families.

It prints the detected flags, the revisions (and optionally processor families)
they belong to, and any flags none of the tables know about.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runReport(c.OutOrStdout(), opts)
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func runReport(w io.Writer, opts *ReportOptions) error {
	path := opts.CPUInfo
	if path == "" {
		path = armfeatures.DefaultCPUInfoPath
	}

	detectOpts := []armfeatures.DetectOption{
		armfeatures.WithSource(opts.Source),
		armfeatures.WithCPUInfoPath(path),
	}
	if opts.Processors {
		detectOpts = append(detectOpts, armfeatures.WithProcessorTable())
	}

	r, err := armfeatures.Detect(detectOpts...)
	if err != nil {
		return err
	}

	if opts.Format == FormatJSON {
		return printJSON(w, r)
	}

	fmt.Fprint(w, r)
	return nil
}

// TablesOptions defines flags for the tables subcommand.
type TablesOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *TablesOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func tablesCmd() *cobra.Command {
	opts := &TablesOptions{}

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Display the reference tables",
		Args:  cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return printTables(c.OutOrStdout(), opts.JSON, armfeatures.ArchVersions, armfeatures.Processors)
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

type tableJSON struct {
	Name    string              `json:"name"`
	Title   string              `json:"title"`
	Kind    string              `json:"kind"`
	Entries []armfeatures.Entry `json:"entries"`
}

func printTables(w io.Writer, asJSON bool, tables ...*armfeatures.Table) error {
	if asJSON {
		out := make([]tableJSON, 0, len(tables))
		for _, t := range tables {
			out = append(out, tableJSON{
				Name:    t.Name(),
				Title:   t.Title(),
				Kind:    t.Kind().String(),
				Entries: t.Entries(),
			})
		}
		return printJSON(w, out)
	}

	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, t)
	}
	return nil
}

// LintOptions defines flags for the lint subcommand.
type LintOptions struct {
	JSON bool `flag:"json" flagshort:"j" flagdescr:"Output in JSON format"`
}

func (o *LintOptions) Attach(c *cobra.Command) error {
	return structcli.Define(c, o)
}

func lintCmd() *cobra.Command {
	opts := &LintOptions{}

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the reference tables for suspicious tokens",
		Long: `Check the reference tables for tokens the arm64 kernel never prints on a
Features line, and for tokens claimed by more than one architecture revision.
Exits with code 0 if the tables are clean, 1 otherwise.`,
		Args: cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			return structcli.Unmarshal(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			n, err := runLint(c.OutOrStdout(), opts.JSON, armfeatures.ArchVersions, armfeatures.Processors)
			if err != nil {
				return err
			}
			if n > 0 {
				if !opts.JSON {
					fmt.Fprintf(os.Stderr, "FAIL: %d table issue(s) found\n", n)
				}
				os.Exit(1)
			}
			return nil
		},
	}

	if err := opts.Attach(cmd); err != nil {
		panic(err)
	}
	return cmd
}

func runLint(w io.Writer, asJSON bool, tables ...*armfeatures.Table) (int, error) {
	issues := armfeatures.Lint(tables...)

	if asJSON {
		return len(issues), printJSON(w, map[string]any{
			"ok":     len(issues) == 0,
			"issues": issuesOrEmpty(issues),
		})
	}

	if len(issues) == 0 {
		fmt.Fprintln(w, "OK: no table issues found")
		return 0, nil
	}
	for _, i := range issues {
		fmt.Fprintln(w, i)
	}
	return len(issues), nil
}

func issuesOrEmpty(issues []armfeatures.Issue) []armfeatures.Issue {
	if issues == nil {
		return []armfeatures.Issue{}
	}
	return issues
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show tool, kernel and CPU version",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			w := c.OutOrStdout()
			if version != "" {
				fmt.Fprintf(w, "armfeatures %s", version)
				if commit != "" {
					fmt.Fprintf(w, " (%s)", commit)
				}
				if date != "" {
					fmt.Fprintf(w, " built %s", date)
				}
				fmt.Fprintln(w)
			} else {
				fmt.Fprintln(w, "armfeatures (dev)")
			}

			release, err := armfeatures.KernelRelease()
			if err != nil {
				if errors.Is(err, armfeatures.ErrUnsupportedPlatform) {
					return nil
				}
				return err
			}
			fmt.Fprintf(w, "Kernel: %s\n", release)

			if machine, err := armfeatures.Machine(); err == nil {
				fmt.Fprintf(w, "Machine: %s\n", machine)
			}
			if brand, vendor := armfeatures.CPUDescription(); brand != "" || vendor != "" {
				fmt.Fprintf(w, "CPU: %s\n", strings.TrimSpace(brand+" "+vendorSuffix(vendor)))
			}
			return nil
		},
	}
}

func vendorSuffix(vendor string) string {
	if vendor == "" {
		return ""
	}
	return "(" + vendor + ")"
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func availableNames[E comparable](ids map[E][]string, order []E) string {
	names := make([]string, 0, len(order))
	for _, e := range order {
		names = append(names, ids[e]...)
	}
	return strings.Join(names, ", ")
}

func parseSource(input string) (armfeatures.Source, error) {
	var s armfeatures.Source
	v := enumflag.New(&s, "source", sourceIdentifiers, enumflag.EnumCaseInsensitive)
	if err := v.Set(strings.TrimSpace(input)); err != nil {
		return s, fmt.Errorf("unknown source: %q (available: %s)", input, availableNames(sourceIdentifiers, armfeatures.SourceValues()))
	}
	return s, nil
}

func parseFormat(input string) (OutputFormat, error) {
	var f OutputFormat
	v := enumflag.New(&f, "format", formatIdentifiers, enumflag.EnumCaseInsensitive)
	if err := v.Set(strings.TrimSpace(input)); err != nil {
		return f, fmt.Errorf("unknown format: %q (available: %s)", input, availableNames(formatIdentifiers, []OutputFormat{FormatText, FormatJSON}))
	}
	return f, nil
}

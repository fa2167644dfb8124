// Package main implements uvecinfo, a small inspection tool that
// reports which vector tier a build dispatches to and what each tier's
// capability tables look like.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/numgo/uvec"
)

// Config holds the command-line options for uvecinfo.
type Config struct {
	JSON bool   // emit machine-readable output
	Tier string // inspect a specific tier instead of the active one
	All  bool   // dump every tier's table
}

var cfg Config

type kindReport struct {
	Kind  string    `json:"kind"`
	Lanes int       `json:"lanes"`
	Caps  uvec.Caps `json:"caps"`
}

type tierReport struct {
	Tier   string       `json:"tier"`
	Width  int          `json:"width_bytes"`
	Active bool         `json:"active"`
	Kinds  []kindReport `json:"kinds"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "uvecinfo",
		Short: "Show the active vector tier and its capability tables",
		Long: `uvecinfo reports the vector instruction tier this build dispatches to,
the register width, the per-element-type lane counts, and the native
capability flags of each (tier, element type) pair. Operations whose
flag is false are emulated with results identical to the scalar
definition.

The active tier respects the UVEC_NO_SIMD and UVEC_TIER environment
overrides, so uvecinfo also shows what a constrained run would use.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVar(&cfg.JSON, "json", false, "emit JSON")
	rootCmd.Flags().StringVar(&cfg.Tier, "tier", "", "inspect a specific tier (scalar, portable, sse2, avx2)")
	rootCmd.Flags().BoolVar(&cfg.All, "all", false, "dump every tier")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg Config) error {
	var targets []uvec.Target
	switch {
	case cfg.All:
		targets = uvec.Targets()
	case cfg.Tier != "":
		tier, ok := uvec.ParseTier(cfg.Tier)
		if !ok {
			return fmt.Errorf("unknown tier %q", cfg.Tier)
		}
		targets = []uvec.Target{uvec.TargetFor(tier)}
	default:
		targets = []uvec.Target{uvec.Current()}
	}

	reports := make([]tierReport, 0, len(targets))
	for _, target := range targets {
		reports = append(reports, report(target))
	}

	if cfg.JSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	for _, r := range reports {
		printReport(cmd, r)
	}
	return nil
}

func report(target uvec.Target) tierReport {
	r := tierReport{
		Tier:   target.Name(),
		Width:  target.Width(),
		Active: target.Tier() == uvec.Current().Tier(),
	}
	for _, k := range uvec.Kinds() {
		r.Kinds = append(r.Kinds, kindReport{
			Kind:  k.String(),
			Lanes: target.Lanes(k),
			Caps:  target.Caps(k),
		})
	}
	return r
}

func printReport(cmd *cobra.Command, r tierReport) {
	out := cmd.OutOrStdout()
	marker := ""
	if r.Active {
		marker = " (active)"
	}
	fmt.Fprintf(out, "tier %s%s: %d-bit registers\n", r.Tier, marker, r.Width*8)
	fmt.Fprintf(out, "  %-5s %5s  %s\n", "kind", "lanes", "add sadd mul fma hadd gather scatter")
	for _, k := range r.Kinds {
		fmt.Fprintf(out, "  %-5s %5d  %3s %4s %3s %3s %4s %6s %7s\n",
			k.Kind, k.Lanes,
			yn(k.Caps.NativeAdd), yn(k.Caps.NativeSaturatingAdd), yn(k.Caps.NativeMul),
			yn(k.Caps.NativeFMA), yn(k.Caps.NativeHorizontalAdd), yn(k.Caps.Gather), yn(k.Caps.Scatter))
	}
}

func yn(b bool) string {
	if b {
		return "y"
	}
	return "-"
}

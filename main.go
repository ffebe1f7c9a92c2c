// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gohgl/inp"
	"github.com/cpmech/gohgl/out"
	"github.com/cpmech/gohgl/pipe"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

const version = "1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		io.Verbose = true
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gohgl",
		Short: "Hydraulic and energy grade lines along a pipe",
		Long: `gohgl computes the hydraulic grade line (HGL) and energy grade line (EGL)
along a pipe carrying an incompressible fluid at steady flow.

Examples:
  gohgl run examples/single_pipe.yaml
  gohgl run examples/single_pipe.yaml --save hgl.png
  gohgl run examples/siphon.json --pipe S1 --npts 200`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

// runOptions holds the flags of the run command
type runOptions struct {
	save    string // plot filename; empty means no plot
	pipe    string // pipe name; empty selects the first pipe
	npts    int    // number of sample points
	nptsSet bool   // npts was given; overrides the configuration
	quiet   bool   // no messages
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run <config>",
		Short: "Compute the profile of one pipe and write the results next to the configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.nptsSet = cmd.Flags().Changed("npts")
			return runSinglePipe(args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.save, "save", "", "save HGL/EGL plot to file (.png, .svg, .pdf)")
	cmd.Flags().StringVar(&opts.pipe, "pipe", "", "name of pipe (default: first pipe)")
	cmd.Flags().IntVar(&opts.npts, "npts", inp.DefaultNpts, "number of sample points along the pipe")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print messages")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("gohgl version %s\n", version)
		},
	}
}

// runSinglePipe reads the configuration, computes the profile of the selected pipe,
// writes <config>_results.json and optionally a plot
func runSinglePipe(cfgPath string, opts runOptions) (err error) {

	// messages
	defer func(v bool) { io.Verbose = v }(io.Verbose)
	if opts.quiet {
		io.Verbose = false
	}

	// input
	dat, err := inp.ReadData(cfgPath)
	if err != nil {
		return
	}
	if opts.nptsSet {
		dat.Npts = opts.npts
	}
	c, err := dat.Case(opts.pipe)
	if err != nil {
		return
	}

	// profile
	prof, err := c.Pipe.Profile(c.Fluid, c.Flow)
	if err != nil {
		return
	}
	io.Pf("\n%v\n", c.Pipe)
	io.Pforan("V  = %.6g m/s\n", prof.V)
	io.Pforan("Re = %.6g (%v)\n", prof.Re, prof.Regime)
	io.Pforan("f  = %.6g (%v, %d iterations)\n", prof.F, c.Flow.Method, prof.Iterations)
	io.Pforan("hf = %.6g m\n", prof.Hf)
	io.Pforan("hm = %.6g m\n", prof.Hm)
	io.Pforan("H  = %.6g m => %.6g m\n", c.Flow.Hin, prof.Hout())
	if !prof.Converged {
		io.Pfyel("warning: Colebrook-White did not converge after %d iterations; using last iterate f = %g\n", prof.Iterations, prof.F)
	}

	// assessment
	var ass *pipe.Assessment
	if c.Assess != nil {
		ass, err = prof.Assess(c.Fluid.Rho, c.Flow.Grav, c.Assess.Patm, c.Assess.Pvap)
		if err != nil {
			return
		}
		if ass.SubAtmospheric {
			io.Pfyel("warning: sub-atmospheric pressure head %.4g m at x = %.4g m\n", ass.Pmin, ass.Xmin)
		}
		if ass.Cavitation {
			io.Pfyel("warning: cavitation risk at x = %.4g m; absolute pressure below vapour pressure by %.4g m\n", ass.Xmin, -ass.Margin)
		}
	}

	// results
	fn := out.ResultsPath(cfgPath)
	if err = out.NewResults(c.Pipe.Name, c.Fluid, c.Flow, prof, ass).Write(fn); err != nil {
		return
	}
	io.Pfgreen("Wrote results to %s\n", fn)

	// plot
	if opts.save != "" {
		if err = out.PlotHglEgl(prof.X, prof.HGL, prof.EGL, prof.Z, "HGL/EGL: "+c.Pipe.Name, opts.save); err != nil {
			return
		}
		io.Pfgreen("Saved plot to %s\n", opts.save)
	}
	return
}

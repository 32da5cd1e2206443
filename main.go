// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/keithjlee/dsg-wbm/fem"
	"github.com/keithjlee/dsg-wbm/inp"
	"github.com/keithjlee/dsg-wbm/out"
	"github.com/spf13/cobra"
)

// command line settings
var (
	workers int
	condmax float64
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "dsg",
	Short:         "dsg -- linear static analysis of trusses and frames",
	Long:          "dsg reads a structural model (.json, .yaml or .yml) and computes displacements, reactions and member forces.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		chk.Verbose = verbose
	},
}

var runCmd = &cobra.Command{
	Use:   "run <model>",
	Short: "Analyse a model and print the results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mdl, s, err := build(cmd, args[0])
		if err != nil {
			return err
		}
		if err = s.Analyze(); err != nil {
			return err
		}
		io.Pf("\n%s\n", header(mdl))
		io.Pf("%s\n%s\n%s", out.Summary(s), out.Nodes(s), out.Members(s))
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <model>",
	Short: "Read and preprocess a model without analysing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mdl, s, err := build(cmd, args[0])
		if err != nil {
			return err
		}
		io.Pf("\n%s\n", header(mdl))
		io.Pf("%s\n%s", out.Summary(s), out.Incidences(s))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "number of goroutines computing element matrices (0 = model setting or GOMAXPROCS)")
	rootCmd.PersistentFlags().Float64Var(&condmax, "condmax", fem.DefaultCondMax, "largest acceptable condition number of the reduced stiffness matrix")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	rootCmd.AddCommand(runCmd, checkCmd)
}

// build reads the model and builds the structure. Flags given in the command line override
// the settings in the model file
func build(cmd *cobra.Command, path string) (mdl *inp.Model, s *fem.Structure, err error) {
	mdl, err = inp.ReadModel(path)
	if err != nil {
		return
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		mdl.Control.Workers = workers
	}
	if flags.Changed("condmax") {
		mdl.Control.CondMax = condmax
	}
	if flags.Changed("verbose") {
		mdl.Control.Verbose = verbose
	}
	s, err = mdl.Build()
	return
}

// header returns the title of the model
func header(mdl *inp.Model) string {
	if mdl.Desc == "" {
		return io.Sf("model %q", mdl.Key)
	}
	return io.Sf("model %q: %s", mdl.Key, mdl.Desc)
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(2)
		}
	}()

	// run command
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

// Command aigtool is a thin driver over the aig library: it inspects and
// transforms AIGER files from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	aig "github.com/verikit/goaig"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:           "aigtool",
		Short:         "inspect and transform AIGER circuits",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if *verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
	root.AddCommand(infoCmd(), reencodeCmd(), strashCmd(), coiCmd(), unrollCmd(), cnfCmd(), moveCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "print circuit statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := aig.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("nodes       %d\n", a.NumNodes())
			fmt.Printf("inputs      %d\n", len(a.Inputs))
			fmt.Printf("latches     %d\n", len(a.Latches))
			fmt.Printf("ands        %d\n", a.NumAnds())
			fmt.Printf("outputs     %d\n", len(a.Outputs))
			fmt.Printf("bads        %d\n", len(a.Bads))
			fmt.Printf("constraints %d\n", len(a.Constraints))
			fmt.Printf("justice     %d\n", len(a.Justice))
			fmt.Printf("fairness    %d\n", len(a.Fairness))

			return nil
		},
	}
}

// transformCmd builds a read-transform-write command.
func transformCmd(use, short string, apply func(*aig.Aig) *aig.Aig) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <in> <out>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := aig.ReadFile(args[0])
			if err != nil {
				return err
			}
			before := a.NumNodes()
			a = apply(a)
			log.Debugf("%s: %d nodes in, %d nodes out", use, before, a.NumNodes())

			return a.WriteFile(args[1])
		},
	}
}

func reencodeCmd() *cobra.Command {
	return transformCmd("reencode", "pack ids into the canonical role order",
		func(a *aig.Aig) *aig.Aig { return a.Reencode() })
}

func strashCmd() *cobra.Command {
	return transformCmd("strash", "structurally hash equivalent gates",
		func(a *aig.Aig) *aig.Aig { return a.Strash() })
}

func coiCmd() *cobra.Command {
	return transformCmd("coi", "restrict to the cone of influence of the properties",
		func(a *aig.Aig) *aig.Aig {
			refined, _ := a.CoiRefine()

			return refined
		})
}

func moveCmd() *cobra.Command {
	return transformCmd("move", "fold constraints into a sticky latch",
		func(a *aig.Aig) *aig.Aig { return a.Move() })
}

func unrollCmd() *cobra.Command {
	var k int
	cmd := transformCmd("unroll", "expand k time frames",
		func(a *aig.Aig) *aig.Aig { return a.UnrollTo(k) })
	cmd.Flags().IntVarP(&k, "frames", "k", 1, "number of frames to unroll")

	return cmd
}

func cnfCmd() *cobra.Command {
	var optimize bool
	cmd := &cobra.Command{
		Use:   "cnf <in> <out.cnf>",
		Short: "extract DIMACS CNF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := aig.ReadFile(args[0])
			if err != nil {
				return err
			}
			cnf := a.CNF(optimize)
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			// DIMACS variables are one-based; node ids shift up by one.
			fmt.Fprintf(f, "p cnf %d %d\n", cnf.MaxVar()+1, len(cnf))
			for _, clause := range cnf {
				for _, l := range clause {
					v := l.Var() + 1
					if l.Neg() {
						v = -v
					}
					fmt.Fprintf(f, "%d ", v)
				}
				fmt.Fprintln(f, 0)
			}
			log.Debugf("cnf: %d clauses over %d variables", len(cnf), cnf.MaxVar()+1)

			return f.Close()
		},
	}
	cmd.Flags().BoolVar(&optimize, "optimize", false, "detect XOR/ITE subgraphs")

	return cmd
}

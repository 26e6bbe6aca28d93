package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/satsuma-solver/satsuma/gen"
	"github.com/satsuma-solver/satsuma/solver"
)

// Exit codes of the satsuma command.
const (
	exitOK     = 0 // The problem was decided, SAT or UNSAT.
	exitUsage  = 1 // Bad command line.
	exitFormat = 2 // The input file could not be parsed.
)

func main() {
	var verbose bool
	root := &cobra.Command{
		Use:           "satsuma file.cnf",
		Short:         "satsuma decides the satisfiability of a DIMACS CNF formula",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			configureLogging(verbose)
			solve(args[0])
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solving statistics to stderr")
	root.AddCommand(genCommand())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	os.Exit(exitOK)
}

func configureLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// solve parses the given CNF file, runs the search and prints the result:
// a "v" line with one literal per variable followed by "SAT", or "UNSAT".
func solve(path string) {
	pb, err := parse(path)
	if err != nil {
		logrus.WithError(err).Error("could not load problem")
		os.Exit(exitFormat)
	}
	logrus.WithFields(logrus.Fields{
		"vars":    pb.NbVars,
		"clauses": len(pb.Clauses) + len(pb.Units),
	}).Debug("problem loaded")
	s := solver.New(pb)
	if s.Solve() == solver.Sat {
		fmt.Println(modelLine(s.Model()))
		fmt.Println("SAT")
	} else {
		fmt.Println("UNSAT")
	}
}

func parse(path string) (*solver.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	pb, err := solver.ParseCNF(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse DIMACS file %q", path)
	}
	return pb, nil
}

// modelLine formats a model as a DIMACS "v" line, listing exactly one
// literal per declared variable.
func modelLine(model []bool) string {
	var sb strings.Builder
	sb.WriteString("v")
	for i, val := range model {
		if val {
			fmt.Fprintf(&sb, " %d", i+1)
		} else {
			fmt.Fprintf(&sb, " %d", -(i + 1))
		}
	}
	sb.WriteString(" 0")
	return sb.String()
}

// genCommand builds the "gen" subcommand, which writes a random instance
// with a known status on stdout.
func genCommand() *cobra.Command {
	var (
		nbVars    int
		nbClauses int
		seed      int64
		unsat     bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "generate a random CNF instance with a known status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := rand.New(rand.NewSource(seed))
			var clauses [][]int
			if unsat {
				clauses = gen.Unsat(r, nbVars, nbClauses)
			} else {
				clauses = gen.Sat(r, nbVars, nbClauses)
			}
			return gen.Write(os.Stdout, nbVars, clauses)
		},
	}
	flags := cmd.Flags()
	addGenFlags(flags, &nbVars, &nbClauses, &seed, &unsat)
	return cmd
}

func addGenFlags(flags *pflag.FlagSet, nbVars, nbClauses *int, seed *int64, unsat *bool) {
	flags.IntVar(nbVars, "vars", 100, "number of variables")
	flags.IntVar(nbClauses, "clauses", 300, "number of clauses before padding")
	flags.Int64Var(seed, "seed", 42, "random seed")
	flags.BoolVar(unsat, "unsat", false, "plant a contradiction instead of an assignment")
}

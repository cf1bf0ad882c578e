package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jwilms-sat/cdclsat/cdcl"
	"github.com/jwilms-sat/cdclsat/dimacs"
	"github.com/jwilms-sat/cdclsat/graph"
	"github.com/jwilms-sat/cdclsat/simplify"
	"github.com/jwilms-sat/cdclsat/verify"
)

var (
	verbose bool
	timeout time.Duration
	check   bool
)

func main() {
	root := &cobra.Command{
		Use:           "satcore [file.cnf]",
		Short:         "Solve a DIMACS CNF formula by unit propagation, pure-literal elimination, and CDCL search",
		Args:          cobra.MaximumNArgs(1),
		RunE:          runSolve,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log problem size and search statistics")
	root.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	root.Flags().BoolVar(&check, "check", false, "independently re-verify a SAT model before printing it")

	err := root.Execute()
	if err == nil {
		return
	}
	var exitErr exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			fmt.Fprintln(os.Stderr, exitErr.err)
		}
		os.Exit(exitErr.code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}

func runSolve(cmd *cobra.Command, args []string) error {
	log := logrus.WithField("run", uuid.NewString())
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return exitError{code: 2, err: fmt.Errorf("satcore: opening %q: %w", args[0], err)}
		}
		defer f.Close()
		in = f
	}

	nbVars, g, clauses, err := dimacs.Parse(in)
	if err != nil {
		return exitError{code: 2, err: fmt.Errorf("satcore: %w", err)}
	}
	log.WithFields(logrus.Fields{"variables": nbVars, "clauses": len(clauses)}).Info("parsed problem")

	verdict, err := solve(cmd.Context(), g, log)
	if err != nil {
		return exitError{code: 2, err: fmt.Errorf("satcore: %w", err)}
	}

	switch verdict {
	case graphVerdictSat:
		model := modelOf(g)
		if check && !verify.Satisfies(clauses, model) {
			return exitError{code: 2, err: fmt.Errorf("satcore: internal error: produced model does not satisfy the input")}
		}
		fmt.Println(formatModel(model))
		return nil
	case graphVerdictUnsat:
		fmt.Println("UNSAT")
		return exitError{code: 1}
	default:
		return exitError{code: 2, err: fmt.Errorf("satcore: internal error: unreachable verdict")}
	}
}

// solverVerdict unifies simplify.Verdict and cdcl.Verdict behind the two
// outcomes the CLI actually needs to print.
type solverVerdict int

const (
	graphVerdictSat solverVerdict = iota
	graphVerdictUnsat
)

func solve(ctx context.Context, g *graph.Graph, log *logrus.Entry) (solverVerdict, error) {
	verdict, err := simplify.Run(g)
	if err != nil {
		return 0, fmt.Errorf("simplify: %w", err)
	}
	switch verdict {
	case simplify.VerdictSat:
		return graphVerdictSat, nil
	case simplify.VerdictUnsat:
		return graphVerdictUnsat, nil
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	s := cdcl.NewSolver(g)
	cdclVerdict, err := s.Solve(ctx)
	if err != nil {
		return 0, fmt.Errorf("cdcl: %w", err)
	}
	log.WithFields(logrus.Fields{
		"decisions":      s.Stats.Decisions,
		"conflicts":      s.Stats.Conflicts,
		"clausesLearned": s.Stats.ClausesLearned,
		"unitsLearned":   s.Stats.UnitsLearned,
		"duration":       s.Stats.Duration,
	}).Info("search finished")

	if cdclVerdict == cdcl.VerdictSat {
		return graphVerdictSat, nil
	}
	return graphVerdictUnsat, nil
}

// modelOf renders every variable the Graph knows about, assigned or not
// (an unassigned one only happens if the formula left it irrelevant, e.g.
// it occurred only in clauses satisfied some other way); such variables
// default to false, an arbitrary but valid completion of the model.
func modelOf(g *graph.Graph) map[int]bool {
	model := make(map[int]bool, g.NumVariables())
	for _, id := range g.VariableIDs() {
		v, _ := g.Variable(id)
		model[int(id)] = v.Assigned && v.Value
	}
	return model
}

func formatModel(model map[int]bool) string {
	parts := make([]string, 0, len(model)+1)
	for v, value := range model {
		if value {
			parts = append(parts, fmt.Sprintf("%d", v))
		} else {
			parts = append(parts, fmt.Sprintf("-%d", v))
		}
	}
	parts = append(parts, "0")
	return strings.Join(parts, " ")
}

// exitError carries a process exit code alongside an optional message; a
// nil err with a nonzero code (the UNSAT path) prints nothing extra.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

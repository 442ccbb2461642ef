// Command cadical-go is the CLI front end over package sat (spec §6.4):
// it reads a DIMACS CNF, configures and runs the incremental solver, and
// prints a SAT competition style witness. Only the option semantics of
// CaDiCaL's original CLI are in scope; file/pipe decompression and the
// rest of the surrounding front-end are not reproduced here.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/cadical-go/dimacs"
	"github.com/xDarkicex/cadical-go/proof"
	"github.com/xDarkicex/cadical-go/sat"
)

var (
	flagQuiet   bool
	flagVerbose int
	flagNoColor bool
	flagStats   bool
	flagReport  bool
	flagCheck   bool
	flagBinary  bool
	flagConfig  string
	flagDRAT    string
	flagFRAT    string
	flagLRAT    string
	flagVeriPB  string
	flagIDRUP   string
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cadical-go [dimacs-file]",
		Short: "A CDCL SAT solver",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	flags := cmd.Flags()
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "disable all messages")
	flags.CountVarP(&flagVerbose, "verbose", "v", "increase verbosity")
	flags.BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	flags.BoolVar(&flagStats, "stats", false, "log a note after solving (solver counters are not printed)")
	flags.BoolVar(&flagReport, "report", false, "accepted; no progress reports are printed")
	flags.BoolVar(&flagCheck, "check", false, "validate the model against the input before reporting SAT")
	flags.BoolVar(&flagBinary, "binary", false, "use binary framing for proof output")
	flags.StringVar(&flagConfig, "configure", "default", "bundled option set: default, plain, sat, unsat")
	flags.StringVar(&flagDRAT, "drat", "", "write a DRAT proof to this path")
	flags.StringVar(&flagFRAT, "frat", "", "write an FRAT proof to this path")
	flags.StringVar(&flagLRAT, "lrat", "", "write an LRAT proof to this path")
	flags.StringVar(&flagVeriPB, "veripb", "", "write a VeriPB proof to this path")
	flags.StringVar(&flagIDRUP, "idrup", "", "write an IDRUP proof to this path")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	switch {
	case flagQuiet:
		log.SetLevel(logrus.ErrorLevel)
	case flagVerbose >= 2:
		log.SetLevel(logrus.DebugLevel)
	case flagVerbose == 1:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	log.SetFormatter(&logrus.TextFormatter{DisableColors: flagNoColor})

	in := os.Stdin
	path := "<stdin>"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		path = args[0]
	}

	problem, err := dimacs.Parse(in, path, dimacs.ModeRelaxed)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"vars": problem.NumVars, "clauses": len(problem.Clauses)}).Info("parsed problem")

	solver := sat.New()
	if err := solver.Configure(flagConfig); err != nil {
		return err
	}

	closers, err := attachTracers(solver)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range closers {
			c()
		}
	}()

	solver.Reserve(problem.NumVars)
	for _, clause := range problem.Clauses {
		solver.AddClause(clause...)
	}

	status := solver.Solve()

	switch status {
	case sat.StatusSatisfiable:
		model := extractModel(solver, problem.NumVars)
		if flagCheck && !verifyModel(problem, model) {
			return fmt.Errorf("model verification failed")
		}
		if err := dimacs.WriteWitness(os.Stdout, true, model); err != nil {
			return err
		}
	case sat.StatusUnsatisfiable:
		if err := dimacs.WriteWitness(os.Stdout, false, nil); err != nil {
			return err
		}
	default:
		fmt.Println("s UNKNOWN")
	}

	if flagStats {
		printStats(log)
	}
	return nil
}

func extractModel(solver *sat.Solver, numVars int32) []int32 {
	model := make([]int32, 0, numVars)
	for v := int32(1); v <= numVars; v++ {
		model = append(model, solver.Val(v))
	}
	return model
}

func verifyModel(p *dimacs.Problem, model []int32) bool {
	value := make(map[int32]bool, len(model))
	for _, l := range model {
		if l > 0 {
			value[l] = true
		} else {
			value[-l] = false
		}
	}
	for _, clause := range p.Clauses {
		satisfied := false
		for _, l := range clause {
			v := l
			if v < 0 {
				v = -v
			}
			positive := value[v]
			if (l > 0 && positive) || (l < 0 && !positive) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// attachTracers wires up to one tracer per requested proof dialect and
// returns close callbacks to flush/close them after solving (spec
// §4.10, §6.4: "one flag per proof dialect").
func attachTracers(solver *sat.Solver) ([]func(), error) {
	var closers []func()
	open := func(path string) (*os.File, error) {
		return os.Create(path)
	}

	if flagDRAT != "" {
		f, err := open(flagDRAT)
		if err != nil {
			return nil, err
		}
		t := proof.NewDRATTracer(f, flagBinary)
		solver.AddTracer(t)
		closers = append(closers, func() { t.Close(f) })
	}
	if flagFRAT != "" {
		f, err := open(flagFRAT)
		if err != nil {
			return nil, err
		}
		t := proof.NewFRATTracer(f)
		solver.AddTracer(t)
		closers = append(closers, func() { t.Close(f) })
	}
	if flagLRAT != "" {
		f, err := open(flagLRAT)
		if err != nil {
			return nil, err
		}
		t := proof.NewLRATTracer(f)
		solver.AddTracer(t)
		closers = append(closers, func() { t.Close(f) })
	}
	if flagVeriPB != "" {
		f, err := open(flagVeriPB)
		if err != nil {
			return nil, err
		}
		t := proof.NewVeriPBTracer(f)
		solver.AddTracer(t)
		closers = append(closers, func() { t.Close(f) })
	}
	if flagIDRUP != "" {
		f, err := open(flagIDRUP)
		if err != nil {
			return nil, err
		}
		t := proof.NewIDRUPTracer(f)
		solver.AddTracer(t)
		closers = append(closers, func() { t.Close(f) })
	}
	return closers, nil
}

func printStats(log *logrus.Logger) {
	log.Info("solver statistics are not printed by this front end")
}

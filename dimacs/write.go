package dimacs

import (
	"bufio"
	"io"
	"strconv"

	"github.com/xDarkicex/cadical-go/core"
)

// Write emits p.Clauses (and, for incremental problems, p.Cubes) as a
// DIMACS CNF/inccnf stream.
func Write(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	format := "cnf"
	if p.Incremental {
		format = "inccnf"
	}
	if _, err := bw.WriteString("p " + format + " " + strconv.Itoa(int(p.NumVars)) + " " + strconv.Itoa(len(p.Clauses)) + "\n"); err != nil {
		return core.Wrap(err, "dimacs: writing header")
	}
	for _, c := range p.Clauses {
		if err := writeLits(bw, c); err != nil {
			return core.Wrap(err, "dimacs: writing clause")
		}
	}
	for _, cube := range p.Cubes {
		if _, err := bw.WriteString("a "); err != nil {
			return core.Wrap(err, "dimacs: writing cube marker")
		}
		if err := writeLits(bw, cube); err != nil {
			return core.Wrap(err, "dimacs: writing cube")
		}
	}
	if err := bw.Flush(); err != nil {
		return core.Wrap(err, "dimacs: flushing output")
	}
	return nil
}

func writeLits(bw *bufio.Writer, lits []int32) error {
	for _, l := range lits {
		if _, err := bw.WriteString(strconv.Itoa(int(l))); err != nil {
			return err
		}
		if err := bw.WriteByte(' '); err != nil {
			return err
		}
	}
	_, err := bw.WriteString("0\n")
	return err
}

// WriteWitness emits a SAT competition style witness: "s SATISFIABLE"
// followed by one or more "v ..." lines listing the model, zero
// terminated, or "s UNSATISFIABLE" with no model (spec §6.4).
func WriteWitness(w io.Writer, satisfiable bool, model []int32) error {
	bw := bufio.NewWriter(w)
	if !satisfiable {
		if _, err := bw.WriteString("s UNSATISFIABLE\n"); err != nil {
			return core.Wrap(err, "dimacs: writing witness")
		}
		return core.Wrap(bw.Flush(), "dimacs: flushing witness")
	}
	if _, err := bw.WriteString("s SATISFIABLE\n"); err != nil {
		return core.Wrap(err, "dimacs: writing witness")
	}
	const perLine = 10
	if _, err := bw.WriteString("v"); err != nil {
		return core.Wrap(err, "dimacs: writing witness")
	}
	for i, l := range model {
		if i > 0 && i%perLine == 0 {
			if _, err := bw.WriteString("\nv"); err != nil {
				return core.Wrap(err, "dimacs: writing witness")
			}
		}
		if _, err := bw.WriteString(" " + strconv.Itoa(int(l))); err != nil {
			return core.Wrap(err, "dimacs: writing witness")
		}
	}
	if _, err := bw.WriteString(" 0\n"); err != nil {
		return core.Wrap(err, "dimacs: writing witness")
	}
	return core.Wrap(bw.Flush(), "dimacs: flushing witness")
}

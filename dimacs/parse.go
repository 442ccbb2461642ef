// Package dimacs reads and writes the DIMACS CNF family of formats:
// plain "p cnf" problems, the "p inccnf" incremental-cube variant, and the
// "c --opt=val" embedded-option comment convention CaDiCaL's own CLI
// recognizes (spec §6.4, §4.9.2). File and pipe decompression are out of
// scope here; callers hand this package an already-open io.Reader.
package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/xDarkicex/cadical-go/core"
)

// Mode selects how strictly the parser enforces header and literal
// bounds (spec §6.4: "--strict" vs the default relaxed/forced modes).
type Mode int

const (
	ModeRelaxed Mode = iota
	ModeStrict
	ModeForced
)

// Problem is the parsed result: the declared variable/clause counts, the
// clause literals, any embedded "c --opt=val" option comments, and, for
// "p inccnf" files, the cube literal sets that follow the clauses.
type Problem struct {
	NumVars    int32
	NumClauses int32
	Clauses    [][]int32
	Cubes      [][]int32
	Options    map[string]string
	Incremental bool
}

// Parse reads a DIMACS CNF (or inccnf) stream from r, in the given mode.
func Parse(r io.Reader, path string, mode Mode) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	p := &Problem{Options: make(map[string]string)}
	headerSeen := false
	line := 0

	for scanner.Scan() {
		line++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "c") {
			parseOptionComment(trimmed, p.Options)
			continue
		}
		if strings.HasPrefix(trimmed, "p") {
			if headerSeen {
				return nil, core.NewParseError(path, line, "duplicate p-line")
			}
			if err := parseHeader(trimmed, p); err != nil {
				return nil, core.NewParseError(path, line, err.Error())
			}
			headerSeen = true
			continue
		}
		if !headerSeen && mode != ModeRelaxed {
			return nil, core.NewParseError(path, line, "clause before p-line")
		}
		if strings.HasPrefix(trimmed, "a") && p.Incremental {
			cube, err := parseLiterals(trimmed[1:], path, line, mode, p.NumVars)
			if err != nil {
				return nil, err
			}
			p.Cubes = append(p.Cubes, cube)
			continue
		}
		clause, err := parseLiterals(trimmed, path, line, mode, p.NumVars)
		if err != nil {
			return nil, err
		}
		p.Clauses = append(p.Clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, core.Wrap(err, "dimacs: reading "+path)
	}
	if !headerSeen {
		return nil, core.NewParseError(path, line, "missing p-line")
	}
	if mode == ModeForced && int32(len(p.Clauses)) != p.NumClauses {
		return nil, core.NewParseError(path, line, "clause count does not match p-line")
	}
	return p, nil
}

// parseOptionComment recognizes "c --name=value" and "c --name" lines;
// any other comment is ignored.
func parseOptionComment(line string, opts map[string]string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "c"))
	if !strings.HasPrefix(rest, "--") {
		return
	}
	rest = strings.TrimPrefix(rest, "--")
	if eq := strings.IndexByte(rest, '='); eq >= 0 {
		opts[rest[:eq]] = rest[eq+1:]
	} else if rest != "" {
		opts[rest] = "true"
	}
}

func parseHeader(line string, p *Problem) error {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return errString("malformed p-line")
	}
	switch fields[1] {
	case "cnf":
		p.Incremental = false
	case "inccnf":
		p.Incremental = true
	default:
		return errString("unsupported format: " + fields[1])
	}
	nv, err := strconv.ParseInt(fields[2], 10, 32)
	if err != nil {
		return errString("bad variable count")
	}
	nc, err := strconv.ParseInt(fields[3], 10, 32)
	if err != nil {
		return errString("bad clause count")
	}
	p.NumVars = int32(nv)
	p.NumClauses = int32(nc)
	return nil
}

func parseLiterals(text string, path string, line int, mode Mode, numVars int32) ([]int32, error) {
	fields := strings.Fields(text)
	lits := make([]int32, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, core.NewParseError(path, line, "invalid literal: "+f)
		}
		if n == 0 {
			break
		}
		if mode == ModeStrict || mode == ModeForced {
			v := n
			if v < 0 {
				v = -v
			}
			if v > int64(numVars) {
				return nil, core.NewParseError(path, line, "literal exceeds declared variable count")
			}
		}
		lits = append(lits, int32(n))
	}
	return lits, nil
}

type simpleError string

func (e simpleError) Error() string { return string(e) }

func errString(s string) error { return simpleError(s) }

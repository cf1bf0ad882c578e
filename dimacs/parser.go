package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jwilms-sat/cdclsat/graph"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads one signed decimal integer from r. b holds the last byte
// already read (a space, a '-', or a digit); leading whitespace is
// skipped. io.EOF is returned verbatim, and only when the input ends
// before a literal starts, so the caller can tell "ran out of input
// between clauses" from "a real parse error". A literal that runs up to
// the end of input is returned with a nil error; the next call then
// reports io.EOF.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, errors.Wrap(err, "dimacs: reading past a literal")
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "dimacs: truncated literal after '-'")
		}
	}
	sawDigit := false
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, errors.Errorf("dimacs: %q is not a digit", *b)
		}
		sawDigit = true
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	if !sawDigit {
		return 0, errors.New("dimacs: expected a digit, found none")
	}
	if err == io.EOF {
		*b = ' '
		err = nil
	}
	return res * neg, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, errors.Wrap(err, "dimacs: reading header line")
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "cnf" {
		return 0, 0, errors.Errorf("dimacs: malformed header %q, want \"p cnf <vars> <clauses>\"", line)
	}
	nbVars, convErr := strconv.Atoi(fields[1])
	if convErr != nil {
		return 0, 0, errors.Errorf("dimacs: header var count %q is not an int", fields[1])
	}
	nbClauses, convErr = strconv.Atoi(fields[2])
	if convErr != nil {
		return 0, 0, errors.Errorf("dimacs: header clause count %q is not an int", fields[2])
	}
	return nbVars, nbClauses, nil
}

// Parse reads a DIMACS CNF stream, registering every clause in g via
// AddClause. It returns the variable count declared by the header, purely
// as a hint for callers that want to size something (logging, reporting);
// g itself creates variable records lazily and does not depend on it.
//
// clauses echoes back every clause literal list exactly as read, including
// ones AddClause rejected as tautologies, so that a caller can run an
// independent check (see package verify) against the original problem
// after the Graph has been mutated by simplification and search.
//
// A clause that turns out to be a tautology is silently dropped from g,
// the same policy AddClause applies everywhere else (spec invariant I3);
// Parse does not treat that as a syntax error.
func Parse(f io.Reader) (nbVarsHint int, g *graph.Graph, clauses [][]int, err error) {
	g = graph.New()
	r := bufio.NewReader(f)
	var nbClauses int
	sawHeader := false

	b, rErr := r.ReadByte()
	for rErr == nil {
		switch {
		case b == 'c':
			for rErr == nil && b != '\n' {
				b, rErr = r.ReadByte()
			}
		case b == 'p':
			nbVarsHint, nbClauses, err = parseHeader(r)
			if err != nil {
				return 0, nil, nil, err
			}
			sawHeader = true
			logrus.WithFields(logrus.Fields{"vars": nbVarsHint, "clauses": nbClauses}).Debug("dimacs: header parsed")
		case isSpace(b):
			// blank line between clauses, nothing to do
		default:
			if !sawHeader {
				return 0, nil, nil, errors.New("dimacs: clause literal encountered before the \"p cnf\" header")
			}
			lits := make([]int, 0, 3)
			for {
				val, vErr := readInt(&b, r)
				if vErr == io.EOF {
					if len(lits) != 0 {
						return 0, nil, nil, errors.New("dimacs: unterminated clause at end of file")
					}
					rErr = io.EOF
					break
				}
				if vErr != nil {
					return 0, nil, nil, vErr
				}
				if val == 0 {
					clauses = append(clauses, lits)
					if _, ok := g.AddClause(lits); !ok {
						logrus.WithField("literals", lits).Debug("dimacs: dropped tautological clause")
					}
					break
				}
				lits = append(lits, val)
			}
			if rErr == io.EOF {
				break
			}
		}
		if rErr != nil {
			break
		}
		b, rErr = r.ReadByte()
	}
	if rErr != nil && rErr != io.EOF {
		return 0, nil, nil, errors.Wrap(rErr, "dimacs: reading input")
	}
	if !sawHeader {
		return 0, nil, nil, errors.New("dimacs: missing \"p cnf\" header")
	}
	return nbVarsHint, g, clauses, nil
}

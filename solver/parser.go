package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseSlice parses a slice of slices of CNF literals and returns the
// equivalent problem. The number of variables is deduced from the literals.
func ParseSlice(cnf [][]int) *Problem {
	var pb Problem
	for _, line := range cnf {
		lits := make([]Lit, len(line))
		for j, val := range line {
			if val == 0 {
				panic("null literal in clause")
			}
			lits[j] = IntToLit(val)
			if v := int(lits[j].Var()); v >= pb.NbVars {
				pb.NbVars = v + 1
			}
		}
		pb.addClause(lits)
		if pb.Status == Unsat {
			return &pb
		}
	}
	pb.checkUnits()
	return &pb
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads an int from r.
// 'b' is the last read byte. It can be a space, a '-' or a digit.
// All spaces before the int value are ignored.
// Returns io.EOF iff the stream ended before any digit was found; a number
// ending exactly at EOF is returned without error, with *b reset to a space
// so that the next call reports EOF.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, errors.Wrap(err, "could not read digit")
	}
	neg := 1
	if *b == '-' {
		neg = -1
		if *b, err = r.ReadByte(); err != nil {
			return 0, errors.Wrap(err, "cannot read int")
		}
	}
	for {
		if *b < '0' || *b > '9' {
			return 0, errors.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		if *b, err = r.ReadByte(); err != nil || isSpace(*b) {
			break
		}
	}
	if err == io.EOF {
		*b = '\n'
		err = nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "could not read digit")
	}
	if neg == -1 && res == 0 {
		return 0, errors.New("cannot read int: negative zero is not a literal")
	}
	return res * neg, nil
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, errors.Wrap(err, "cannot read header")
	}
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "cnf" {
		return 0, 0, errors.Errorf("invalid syntax %q in header", "p"+line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil || nbVars < 0 {
		return 0, 0, errors.Errorf("nbvars is not a valid count: %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil || nbClauses < 0 {
		return 0, 0, errors.Errorf("nbclauses is not a valid count: %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ParseCNF parses a DIMACS CNF stream and returns the corresponding Problem.
// Any malformed content (missing or garbled header, clause not terminated by
// 0, literal magnitude above the declared number of variables) is reported as
// an error; a trivially unsatisfiable formula is not an error but a Problem
// with the Unsat status.
func ParseCNF(f io.Reader) (*Problem, error) {
	r := bufio.NewReader(f)
	var pb Problem
	headerRead := false
	b, err := r.ReadByte()
	for err == nil {
		switch {
		case b == 'c': // Ignore comment
			b, err = r.ReadByte()
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		case b == 'p': // Parse header
			if headerRead {
				return nil, errors.New("duplicate problem header")
			}
			if pb.NbVars, _, err = parseHeader(r); err != nil {
				return nil, errors.Wrap(err, "cannot parse CNF header")
			}
			headerRead = true
		case isSpace(b): // Skip blanks between clauses.
		default:
			if !headerRead {
				return nil, errors.New("clause found before the problem header")
			}
			lits := make([]Lit, 0, 3)
			for {
				val, err := readInt(&b, r)
				if err == io.EOF {
					return nil, errors.New("unfinished clause while EOF found")
				}
				if err != nil {
					return nil, errors.Wrap(err, "cannot parse clause")
				}
				if val == 0 {
					pb.addClause(lits)
					break
				}
				if val > pb.NbVars || -val > pb.NbVars {
					return nil, errors.Errorf("invalid literal %d for problem with %d vars only", val, pb.NbVars)
				}
				lits = append(lits, IntToLit(val))
			}
			if pb.Status == Unsat {
				return &pb, nil
			}
		}
		b, err = r.ReadByte()
	}
	if err != io.EOF {
		return nil, err
	}
	if !headerRead {
		return nil, errors.New("no problem header found")
	}
	pb.checkUnits()
	return &pb, nil
}

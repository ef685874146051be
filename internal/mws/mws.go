package mws

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RealSuffix is removed from the first field of every triple.
const RealSuffix = "/real"

// Sentinel tokens mark structure in the export and never reach the output.
var sentinels = map[string]struct{}{
	"1": {},
	"2": {},
}

// Triple is one output record. Missing fields of a ragged tail are "".
type Triple [3]string

func HasDigit(tok string) bool {
	return strings.ContainsAny(tok, "0123456789")
}

// IsSentinel compares by exact text, so "1.0" or "01" are not sentinels.
func IsSentinel(tok string) bool {
	_, ok := sentinels[tok]
	return ok
}

func Keep(tok string) bool {
	return HasDigit(tok) && !IsSentinel(tok)
}

// FilterTokens returns the tokens that Keep accepts, in input order.
func FilterTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if Keep(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// isSpace matches ASCII whitespace only; a no-break space stays inside its token.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Fields splits s on runs of ASCII whitespace.
func Fields(s string) []string {
	return strings.FieldsFunc(s, isSpace)
}

// ReadTokens splits every line of r on whitespace and returns the kept tokens
// in file order. Lines have no length limit.
func ReadTokens(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var kept []string
	for {
		line, err := br.ReadString('\n')
		kept = append(kept, FilterTokens(Fields(line))...)
		if errors.Is(err, io.EOF) {
			return kept, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// StripReal removes the first occurrence of RealSuffix only.
func StripReal(s string) string {
	return strings.Replace(s, RealSuffix, "", 1)
}

// Group walks tokens in steps of three starting at index 0. The first field of
// each triple goes through StripReal; the others are copied verbatim.
func Group(tokens []string) []Triple {
	triples := make([]Triple, 0, (len(tokens)+2)/3)
	for i := 0; i < len(tokens); i += 3 {
		var t Triple
		t[0] = StripReal(tokens[i])
		if i+1 < len(tokens) {
			t[1] = tokens[i+1]
		}
		if i+2 < len(tokens) {
			t[2] = tokens[i+2]
		}
		triples = append(triples, t)
	}
	return triples
}

// String renders the triple without the line terminator; note the trailing space.
func (t Triple) String() string {
	return t[0] + ", " + t[1] + ", " + t[2] + " "
}

func WriteTriple(w io.Writer, t Triple) error {
	_, err := fmt.Fprint(w, t.String(), "\n")
	return err
}

func WriteTriples(w io.Writer, triples []Triple) error {
	for _, t := range triples {
		if err := WriteTriple(w, t); err != nil {
			return err
		}
	}
	return nil
}

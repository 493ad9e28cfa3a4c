// Package loader reads rail routes written as compact "ABn" tokens, such as
//
//	Graph: AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7
//
// and feeds them to any RouteSink (a *core.Graph or a *rail.Network).
//
// Format:
//   - tokens are separated by commas and/or whitespace, over any number of lines;
//   - a leading "Graph:" label is ignored (case-insensitive);
//   - blank lines and lines starting with '#' are skipped;
//   - a token is one source character, one destination character and a
//     non-negative decimal distance.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMalformedRoute indicates a token that is not <source><destination><digits>.
var ErrMalformedRoute = errors.New("loader: malformed route")

// Triple is one parsed route.
type Triple struct {
	Source      string
	Destination string
	Weight      int64
}

// RouteSink receives parsed routes.
type RouteSink interface {
	AddRoute(source, destination string, weight int64) error
}

// Parse reads every route token from r.
// It stops at the first malformed token; the error names its line and text.
func Parse(r io.Reader) ([]Triple, error) {
	sc := bufio.NewScanner(r)
	out := make([]Triple, 0, 16)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if len(text) >= 6 && strings.EqualFold(text[:6], "graph:") {
			text = text[6:]
		}
		fields := strings.FieldsFunc(text, func(c rune) bool { return c == ',' || unicode.IsSpace(c) })
		var tok string
		for _, tok = range fields {
			t, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return out, nil
}

// parseToken splits "AB5" into A, B, 5.
func parseToken(tok string) (Triple, error) {
	src, n1 := utf8.DecodeRuneInString(tok)
	if src == utf8.RuneError || n1 == len(tok) {
		return Triple{}, fmt.Errorf("%w: %q", ErrMalformedRoute, tok)
	}
	dst, n2 := utf8.DecodeRuneInString(tok[n1:])
	digits := tok[n1+n2:]
	if dst == utf8.RuneError || digits == "" || unicode.IsDigit(src) || unicode.IsDigit(dst) {
		return Triple{}, fmt.Errorf("%w: %q", ErrMalformedRoute, tok)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Triple{}, fmt.Errorf("%w: %q", ErrMalformedRoute, tok)
		}
	}
	w, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Triple{}, fmt.Errorf("%w: %q: %w", ErrMalformedRoute, tok, err)
	}

	return Triple{Source: string(src), Destination: string(dst), Weight: w}, nil
}

// Load parses r and inserts every route into sink, in input order.
// It returns how many routes were inserted before any failure.
func Load(r io.Reader, sink RouteSink) (int, error) {
	triples, err := Parse(r)
	if err != nil {
		return 0, err
	}
	for i, t := range triples {
		if err = sink.AddRoute(t.Source, t.Destination, t.Weight); err != nil {
			return i, fmt.Errorf("loader: add %s%s%d: %w", t.Source, t.Destination, t.Weight, err)
		}
	}

	return len(triples), nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string, sink RouteSink) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, sink)
}

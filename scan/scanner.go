package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
)

// MalformedLineError reports a registration line whose argument list cannot
// be parsed. Any such line invalidates the whole run - the generated list is
// consumed as compiled source and a partial list would fail downstream in
// much less obvious ways.
type MalformedLineError struct {
	Path     string
	Line     int
	Category string
	Text     string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf(`%s:%d: expected "(<id>)" or "(<id>, ..." after %s registration, not %q`, e.Path, e.Line, e.Category, e.Text)
}

// DuplicateFunc is called for every repeated registration of the same symbol
// under the same category when set. Reporting only - the repeat stays in the
// table either way.
type DuplicateFunc func(category, symbol, path string, line int)

// Scanner detects registration lines and feeds extracted symbols into a
// SymbolTable. A line is interpreted if and only if it begins at column 0
// with the marker prefix immediately followed by a category tag, anything
// else passes through unnoticed.
type Scanner struct {
	OnDuplicate DuplicateFunc

	marker *regexp.Regexp
	arg    *regexp.Regexp
}

// NewScanner creates Scanner for the given literal marker prefix.
func NewScanner(marker string) *Scanner {
	return &Scanner{
		marker: regexp.MustCompile(`^` + regexp.QuoteMeta(marker) + `(\w+)`),
		arg:    regexp.MustCompile(`^\s*\(\s*(\w+)\s*[,)]`),
	}
}

// ScanFile scans a single file. The file is kept open only for the duration
// of the scan.
func (s *Scanner) ScanFile(path string, table *SymbolTable) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Scan(f, path, table)
}

// Scan reads r line by line aggregating all registrations found. name is
// used in diagnostics only.
func (s *Scanner) Scan(r io.Reader, name string, table *SymbolTable) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		if err := s.scanLine(sc.Text(), name, line, table); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("unable to read %s: %w", name, err)
	}
	return nil
}

func (s *Scanner) scanLine(text, name string, line int, table *SymbolTable) error {
	m := s.marker.FindStringSubmatchIndex(text)
	if m == nil {
		return nil
	}

	category := text[m[2]:m[3]]
	am := s.arg.FindStringSubmatch(text[m[1]:])
	if am == nil {
		return &MalformedLineError{Path: name, Line: line, Category: category, Text: text}
	}

	if table.Add(category, am[1]) && s.OnDuplicate != nil {
		s.OnDuplicate(category, am[1], name, line)
	}
	return nil
}

// Package scan detects registration lines in source text and aggregates the
// declared symbols into a per-category table.
package scan

import "sort"

// SymbolTable maps a registration category to the ordered list of symbols
// registered under it. Entries are append-only and the table lives for
// exactly one run - it is built during the scan phase, read once during
// emission and then discarded.
type SymbolTable struct {
	symbols map[string][]string
	count   int
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string][]string)}
}

// Add appends symbol to the category list creating the category on first
// registration. No deduplication is performed - the same symbol registered
// twice is listed twice. Returns true when the symbol was already present
// under the category so the caller may report repeats.
func (t *SymbolTable) Add(category, symbol string) bool {
	seen := false
	for _, s := range t.symbols[category] {
		if s == symbol {
			seen = true
			break
		}
	}
	t.symbols[category] = append(t.symbols[category], symbol)
	t.count++
	return seen
}

// Categories returns category names in ascending lexicographic order. Keys
// are not ordered in the table itself, emission sorts them every time.
func (t *SymbolTable) Categories() []string {
	names := make([]string, 0, len(t.symbols))
	for name := range t.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Symbols returns symbols registered under category in the order of first
// appearance across all scanned inputs. Returns nil for unknown category.
func (t *SymbolTable) Symbols(category string) []string {
	return t.symbols[category]
}

// Len returns the number of categories in the table.
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// Size returns the total number of registrations across all categories.
func (t *SymbolTable) Size() int {
	return t.count
}

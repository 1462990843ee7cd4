package scan

import (
	"reflect"
	"testing"
)

func TestSymbolTable(t *testing.T) {

	t.Run("grouping and order", func(t *testing.T) {
		tbl := NewSymbolTable()
		tbl.Add("OP", "add")
		tbl.Add("FMT", "rgb565")
		tbl.Add("OP", "sub")
		tbl.Add("FMT", "yuyv")

		if got, want := tbl.Categories(), []string{"FMT", "OP"}; !reflect.DeepEqual(got, want) {
			t.Errorf("categories: got %v, want %v", got, want)
		}
		if got, want := tbl.Symbols("OP"), []string{"add", "sub"}; !reflect.DeepEqual(got, want) {
			t.Errorf("OP symbols: got %v, want %v", got, want)
		}
		if got, want := tbl.Symbols("FMT"), []string{"rgb565", "yuyv"}; !reflect.DeepEqual(got, want) {
			t.Errorf("FMT symbols: got %v, want %v", got, want)
		}
		if tbl.Len() != 2 {
			t.Errorf("expected 2 categories, got %d", tbl.Len())
		}
		if tbl.Size() != 4 {
			t.Errorf("expected 4 symbols total, got %d", tbl.Size())
		}
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		tbl := NewSymbolTable()
		if seen := tbl.Add("OP", "add"); seen {
			t.Error("first registration reported as seen")
		}
		if seen := tbl.Add("OP", "add"); !seen {
			t.Error("repeated registration not reported as seen")
		}
		if got, want := tbl.Symbols("OP"), []string{"add", "add"}; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("same symbol different categories", func(t *testing.T) {
		tbl := NewSymbolTable()
		tbl.Add("OP", "convert")
		if seen := tbl.Add("FMT", "convert"); seen {
			t.Error("registration in another category reported as seen")
		}
	})

	t.Run("empty table", func(t *testing.T) {
		tbl := NewSymbolTable()
		if len(tbl.Categories()) != 0 {
			t.Error("expected no categories")
		}
		if tbl.Symbols("OP") != nil {
			t.Error("expected nil symbols for unknown category")
		}
	})
}

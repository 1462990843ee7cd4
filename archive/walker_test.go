package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func createArchive(t *testing.T, members []string) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	defer zw.Close()

	for _, m := range members {
		if len(m) > 0 && m[len(m)-1] == '/' {
			if _, err := zw.Create(m); err != nil {
				t.Fatal(err)
			}
			continue
		}
		w, err := zw.Create(m)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte("content of " + m)); err != nil {
			t.Fatal(err)
		}
	}
	return name
}

func collect(t *testing.T, arc, prefix string, exts []string) []string {
	t.Helper()

	var names []string
	err := Walk(arc, prefix, exts, func(archive string, f *zip.File) error {
		if archive != arc {
			t.Errorf("wrong archive path: got %s, want %s", archive, arc)
		}
		names = append(names, f.FileHeader.Name)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return names
}

func TestWalk(t *testing.T) {

	arc := createArchive(t, []string{
		"src/",
		"src/a.c",
		"src/b.h",
		"src/notes.txt",
		"include/c.h",
		"README",
	})

	t.Run("no filters", func(t *testing.T) {
		want := []string{"src/a.c", "src/b.h", "src/notes.txt", "include/c.h", "README"}
		if got := collect(t, arc, "", nil); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("prefix", func(t *testing.T) {
		want := []string{"src/a.c", "src/b.h", "src/notes.txt"}
		if got := collect(t, arc, "src/", nil); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("extensions", func(t *testing.T) {
		want := []string{"src/b.h", "include/c.h"}
		if got := collect(t, arc, "", []string{".h"}); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("prefix and extensions", func(t *testing.T) {
		want := []string{"src/a.c"}
		if got := collect(t, arc, "src/", []string{".c"}); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if got := collect(t, arc, "lib/", nil); len(got) != 0 {
			t.Errorf("expected nothing, got %v", got)
		}
	})
}

func TestWalkStopsOnError(t *testing.T) {

	arc := createArchive(t, []string{"a.c", "b.c", "c.c"})

	boom := errors.New("boom")
	count := 0
	err := Walk(arc, "", nil, func(_ string, _ *zip.File) error {
		count++
		if count == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("walk continued after error, %d calls", count)
	}
}

func TestWalkUnsafePath(t *testing.T) {

	arc := createArchive(t, []string{"../escape.c"})

	err := Walk(arc, "", nil, func(_ string, _ *zip.File) error {
		t.Error("walkFn called for unsafe entry")
		return nil
	})
	if err == nil {
		t.Error("expected error for path traversal entry")
	}
}

func TestWalkBadArchive(t *testing.T) {

	name := filepath.Join(t.TempDir(), "not-a-zip")
	if err := os.WriteFile(name, []byte("garbage"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := Walk(name, "", nil, func(_ string, _ *zip.File) error { return nil }); err == nil {
		t.Error("expected error for invalid archive")
	}
}

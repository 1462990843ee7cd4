package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestReport(t *testing.T) {

	dir := t.TempDir()

	input := filepath.Join(dir, "input.c")
	if err := os.WriteFile(input, []byte("MPIX_REGISTER_OP(add)\n"), 0600); err != nil {
		t.Fatal(err)
	}

	conf := &ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	if len(rpt.Name()) == 0 {
		t.Error("report has no name")
	}

	rpt.Store("input/000-input.c", input)
	rpt.Store("input/001-missing.c", filepath.Join(dir, "missing.c"))
	rpt.StoreData("generated.h", []byte("/* Generated with genlist */\n"))

	if err := rpt.Close(); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("report is not a valid archive: %v", err)
	}
	defer zr.Close()

	members := make(map[string]string)
	for _, f := range zr.File {
		r, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatal(err)
		}
		members[f.FileHeader.Name] = string(data)
	}

	if _, ok := members["MANIFEST"]; !ok {
		t.Error("report has no MANIFEST")
	}
	if got := members["input/000-input.c"]; got != "MPIX_REGISTER_OP(add)\n" {
		t.Errorf("wrong stored input: %q", got)
	}
	if got := members["generated.h"]; got != "/* Generated with genlist */\n" {
		t.Errorf("wrong stored output: %q", got)
	}
	// absent input is mentioned in MANIFEST but never archived
	if _, ok := members["input/001-missing.c"]; ok {
		t.Error("missing input ended up in report")
	}
}

func TestReportUninitialized(t *testing.T) {

	// nil report must be usable everywhere to keep call sites simple
	var rpt *Report
	rpt.Store("name", "path")
	rpt.StoreData("name", []byte("data"))
	if len(rpt.Name()) != 0 {
		t.Error("nil report has a name")
	}
	if err := rpt.Close(); err != nil {
		t.Error(err)
	}
}

func TestReportConflicts(t *testing.T) {

	conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	defer rpt.Close()

	rpt.Store("same", "/path/one")
	rpt.Store("same", "/path/one") // same path is fine

	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting overwrite")
		}
	}()
	rpt.Store("same", "/path/two")
}

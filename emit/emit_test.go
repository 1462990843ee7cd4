package emit

import (
	"bytes"
	"strings"
	"testing"

	"genlist/config"
	"genlist/scan"
)

func defaultGenerator(t *testing.T) *config.GeneratorConfig {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("unable to load default configuration: %v", err)
	}
	return &cfg.Generator
}

func TestRender(t *testing.T) {

	tbl := scan.NewSymbolTable()
	tbl.Add("OP", "add")
	tbl.Add("FMT", "rgb565")
	tbl.Add("OP", "sub")

	e, err := New("genlist", defaultGenerator(t))
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"/* Generated with genlist */",
		"",
		"#define MPIX_LIST_FMT \\",
		"\t&mpix_fmt_rgb565, \\",
		"\tNULL",
		"",
		"#define MPIX_LIST_OP \\",
		"\t&mpix_op_add, \\",
		"\t&mpix_op_sub, \\",
		"\tNULL",
		"",
	}, "\n")

	got, err := e.Render(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("wrong output:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}

	// identical input must produce byte-identical output
	again, err := e.Render(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, again) {
		t.Error("repeated render differs")
	}
}

func TestRenderEmptyTable(t *testing.T) {

	e, err := New("genlist", defaultGenerator(t))
	if err != nil {
		t.Fatal(err)
	}
	got, err := e.Render(scan.NewSymbolTable())
	if err != nil {
		t.Fatal(err)
	}
	if want := "/* Generated with genlist */\n"; string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCustomTemplates(t *testing.T) {

	conf := defaultGenerator(t)
	conf.MacroTemplate = "REG_{{ upper .Category }}_TABLE"
	conf.SymbolTemplate = "reg_{{ .Symbol }}_entry"
	conf.Sentinel = "{0}"

	tbl := scan.NewSymbolTable()
	tbl.Add("op", "add")

	e, err := New("genlist", conf)
	if err != nil {
		t.Fatal(err)
	}
	got, err := e.Render(tbl)
	if err != nil {
		t.Fatal(err)
	}

	want := "/* Generated with genlist */\n\n#define REG_OP_TABLE \\\n\treg_add_entry, \\\n\t{0}\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewBadTemplates(t *testing.T) {

	conf := defaultGenerator(t)
	conf.MacroTemplate = "{{ .Category "
	if _, err := New("genlist", conf); err == nil {
		t.Error("expected macro template parse error")
	}

	conf = defaultGenerator(t)
	conf.SymbolTemplate = "{{ bogus .Symbol }}"
	if _, err := New("genlist", conf); err == nil {
		t.Error("expected symbol template parse error")
	}
}

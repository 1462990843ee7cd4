// Package emit renders the aggregated symbol table into preprocessor text.
package emit

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"genlist/config"
	"genlist/scan"
)

// Values is a struct that holds variables we make available for naming
// template expansion.
type Values struct {
	Category string
	Symbol   string
}

// Emitter renders one sentinel-terminated macro list per category. Naming of
// the macro and of every symbol reference is template driven so the same
// scan can serve differently structured libraries.
type Emitter struct {
	tool     string
	sentinel string
	macro    *template.Template
	symbol   *template.Template
}

// New parses naming templates from the generator configuration. A template
// which does not parse is a configuration error, we do not want to discover
// it after scanning gigabytes of sources.
func New(tool string, conf *config.GeneratorConfig) (*Emitter, error) {
	funcMap := sprig.FuncMap()

	macro, err := template.New(string(config.MacroTemplateFieldName)).Funcs(funcMap).Parse(conf.MacroTemplate)
	if err != nil {
		return nil, fmt.Errorf("unable to parse macro name template: %w", err)
	}
	symbol, err := template.New(string(config.SymbolTemplateFieldName)).Funcs(funcMap).Parse(conf.SymbolTemplate)
	if err != nil {
		return nil, fmt.Errorf("unable to parse symbol reference template: %w", err)
	}

	return &Emitter{
		tool:     tool,
		sentinel: conf.Sentinel,
		macro:    macro,
		symbol:   symbol,
	}, nil
}

// Render produces the complete generated text. Categories are emitted in
// ascending lexicographic order, symbols within a category in registration
// order, so identical inputs always give byte-identical output. The result
// is returned as a buffer - the caller decides when (and whether) anything
// reaches its destination.
func (e *Emitter) Render(table *scan.SymbolTable) ([]byte, error) {
	buf := new(bytes.Buffer)

	fmt.Fprintf(buf, "/* Generated with %s */\n", e.tool)

	for _, category := range table.Categories() {
		name, err := expand(e.macro, Values{Category: category})
		if err != nil {
			return nil, fmt.Errorf("unable to expand macro name for category %s: %w", category, err)
		}

		buf.WriteString("\n")
		fmt.Fprintf(buf, "#define %s \\\n", name)

		for _, symbol := range table.Symbols(category) {
			ref, err := expand(e.symbol, Values{Category: category, Symbol: symbol})
			if err != nil {
				return nil, fmt.Errorf("unable to expand reference for symbol %s: %w", symbol, err)
			}
			fmt.Fprintf(buf, "\t%s, \\\n", ref)
		}

		// sentinel line carries no continuation on purpose
		fmt.Fprintf(buf, "\t%s\n", e.sentinel)
	}
	return buf.Bytes(), nil
}

func expand(tmpl *template.Template, values Values) (string, error) {
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

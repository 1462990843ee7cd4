// Package gen drives the scan and emission phases for the generate
// subcommand.
package gen

import (
	"archive/zip"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"genlist/archive"
	"genlist/config"
	"genlist/emit"
	"genlist/misc"
	"genlist/scan"
	"genlist/state"
)

// Run implements the generate subcommand. Input paths are processed strictly
// in command line order, the generated text is written to stdout in a single
// shot after the whole scan succeeded.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	if cmd.Args().Len() == 0 {
		return errors.New("no input source has been specified")
	}

	conf := &env.Cfg.Generator
	if m := cmd.String("marker"); len(m) > 0 {
		conf.Marker = m
	}

	// Sources produced before UTF-8 won the world may need a forced archaic
	// code page (see IANA.org for character set names)
	if cp := cmd.String("force-cp"); len(cp) > 0 {
		enc, err := ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		} else {
			n, _ := ianaindex.IANA.Name(enc)
			log.Debug("Forcefully converting all non UTF-8 sources", zap.String("charset", n))
			env.CodePage = enc
		}
	}

	g := &generator{
		scanner: scan.NewScanner(conf.Marker),
		table:   scan.NewSymbolTable(),
		exts:    conf.Extensions,
		cp:      env.CodePage,
		log:     log,
	}
	if conf.Duplicates == config.DuplicatePolicyWarn {
		g.scanner.OnDuplicate = func(category, symbol, path string, line int) {
			log.Warn("Duplicate registration",
				zap.String("category", category), zap.String("symbol", symbol),
				zap.String("file", path), zap.Int("line", line))
		}
	}

	log.Info("Scan starting", zap.Strings("sources", cmd.Args().Slice()), zap.String("marker", conf.Marker))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	for i, src := range cmd.Args().Slice() {
		if err := g.process(ctx, src); err != nil {
			return err
		}
		env.Rpt.Store(fmt.Sprintf("input/%03d-%s", i, config.CleanFileName(filepath.Base(src))), src)
	}

	em, err := emit.New(misc.GetAppName(), conf)
	if err != nil {
		return err
	}
	data, err := em.Render(g.table)
	if err != nil {
		return err
	}

	// single write - a failed run leaves stdout empty, never truncated
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("unable to write generated output: %w", err)
	}

	env.Rpt.StoreData("generated.h", data)
	log.Info("Generation completed",
		zap.Int("files", g.count), zap.Int("categories", g.table.Len()), zap.Int("symbols", g.table.Size()))
	return nil
}

type generator struct {
	scanner *scan.Scanner
	table   *scan.SymbolTable
	exts    []string
	cp      encoding.Encoding
	log     *zap.Logger
	count   int
}

// process dispatches single input path: a regular file is scanned as is, a
// directory is expanded into matching sources, a zip archive is scanned
// member by member.
func (g *generator) process(ctx context.Context, src string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return g.processDir(ctx, src)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	ok, err := isArchiveFile(src)
	if err != nil {
		return fmt.Errorf("unable to check archive type: %w", err)
	}
	if ok {
		return g.processArchive(ctx, src)
	}
	// explicitly named file is scanned regardless of extension - the build
	// system knows better
	return g.scanFile(src)
}

// processDir collects sources matching configured extensions and scans them
// in natural path order so that generated output does not depend on
// file system quirks.
func (g *generator) processDir(ctx context.Context, dir string) error {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !g.matchExt(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to process directory (%s): %w", dir, err)
	}

	if len(paths) == 0 {
		g.log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}

	sort.Slice(paths, func(i, j int) bool { return natural.Less(paths[i], paths[j]) })

	for _, path := range paths {
		if err := g.scanFile(path); err != nil {
			return err
		}
	}
	return nil
}

// processArchive scans matching members of zip archive in archive order.
func (g *generator) processArchive(ctx context.Context, path string) error {
	count := 0
	err := archive.Walk(path, "", g.exts, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open file in archive (%s::%s): %w", arc, f.FileHeader.Name, err)
		}
		defer r.Close()

		count++
		return g.scanReader(bufio.NewReader(r), arc+"::"+f.FileHeader.Name)
	})
	if err != nil {
		return fmt.Errorf("unable to process archive: %w", err)
	}
	if count == 0 {
		g.log.Debug("Nothing to process", zap.String("archive", path))
	}
	return nil
}

func (g *generator) scanFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return g.scanReader(bufio.NewReader(f), path)
}

// scanReader feeds one source into the scanner, transparently decoding BOM
// marked or forcefully transcoded input. name is used in diagnostics only.
func (g *generator) scanReader(r *bufio.Reader, name string) error {
	g.log.Debug("Scanning", zap.String("source", name))
	g.count++

	// short or empty input is fine, BOM detection just sees less
	head, err := r.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unable to read %s: %w", name, err)
	}
	return g.scanner.Scan(selectReader(r, detectUTF(head), g.cp), name, g.table)
}

func (g *generator) matchExt(path string) bool {
	if len(g.exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range g.exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

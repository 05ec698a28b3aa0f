package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/altinukshini/leadfinder/internal/export"
	"github.com/altinukshini/leadfinder/internal/model"
)

func cmdExport(env *environment, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	all := fs.Bool("all", false, "Export every saved run")
	dir := fs.String("dir", ".", "Output directory")
	fs.Parse(args)

	ctx := context.Background()
	var selected []model.RunRecord
	switch {
	case *all:
		recs, err := env.runs.List(ctx)
		if err != nil {
			return err
		}
		selected = recs
	case fs.NArg() > 0:
		for _, id := range fs.Args() {
			rec, err := env.runs.Get(ctx, id)
			if err != nil {
				return err
			}
			selected = append(selected, rec)
		}
	default:
		recs, err := env.runs.List(ctx)
		if err != nil {
			return err
		}
		if len(recs) > 0 {
			selected = recs[:1]
		}
	}
	if len(selected) == 0 {
		return errors.New("no saved runs to export")
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", *dir, err)
	}

	paths := make([]string, len(selected))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, rec := range selected {
		i, rec := i, rec
		g.Go(func() error {
			path, err := export.WriteFile(*dir, export.RecordFileName(rec), rec.Leads)
			if errors.Is(err, export.ErrNothingToExport) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("run %s: %w", rec.ID, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	written := 0
	for i, p := range paths {
		if p == "" {
			fmt.Fprintf(os.Stderr, "Skipped %s: no leads\n", selected[i].ID)
			continue
		}
		written++
		fmt.Println(p)
	}
	fmt.Fprintf(os.Stderr, "CSV exported! %d files\n", written)
	return nil
}

func cmdImport(env *environment, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	summary := fs.String("summary", "", "Label for the saved run (default: imported: <file name>)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("usage: leadfinder import [-summary text] file.csv")
	}

	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	leads, err := export.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	label := *summary
	if label == "" {
		label = "imported: " + filepath.Base(path)
	}
	rec, err := env.runs.Append(context.Background(), leads, label)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Imported %d leads as %s\n", rec.Count, rec.ID)
	return nil
}

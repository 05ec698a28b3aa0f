package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/ops"
)

func cmdHistory(env *environment, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	olderThan := fs.Duration("older-than", 0, "Only runs saved longer ago than this, e.g. 720h")
	emptyOnly := fs.Bool("empty", false, "Only runs without leads")
	match := fs.String("match", "", "Only runs whose search summary contains this text")
	prune := fs.Bool("prune", false, "Remove the matching runs")
	asJSON := fs.Bool("json", false, "Print runs as JSON")
	fs.Parse(args)

	ctx := context.Background()
	recs, err := env.runs.List(ctx)
	if err != nil {
		return err
	}

	filter := ops.RecordFilter{OlderThan: *olderThan, EmptyOnly: *emptyOnly, Summary: *match}
	if filter != (ops.RecordFilter{}) {
		recs = ops.FilterRecords(recs, filter, time.Now())
	}

	if *prune {
		return pruneRuns(ctx, env, recs)
	}

	out := stdout(os.Stdout)
	if *asJSON {
		return out.json(summarize(recs))
	}
	if len(recs) == 0 {
		fmt.Fprintln(os.Stderr, "No saved runs.")
		return nil
	}
	return out.records(recs)
}

func pruneRuns(ctx context.Context, env *environment, recs []model.RunRecord) error {
	if len(recs) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to remove.")
		return nil
	}
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}

	res, err := ops.RemoveRecords(ctx, env.runs, ids, func(done, total int) {
		fmt.Fprintf(os.Stderr, "\rRemoving %d/%d", done, total)
	})
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Removed %d runs", res.Completed)
	if res.Failed > 0 {
		fmt.Fprintf(os.Stderr, ", %d failed\n", res.Failed)
		return errors.Join(res.Errors...)
	}
	fmt.Fprintln(os.Stderr)
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/altinukshini/leadfinder/internal/api"
	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/normalize"
	"github.com/altinukshini/leadfinder/internal/ops"
)

func cmdRun(env *environment, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	website := fs.String("website", "", "Company domains, comma separated")
	location := fs.String("location", "", "Locations, comma separated")
	emailStatus := fs.String("email-status", "", "Email status filter: "+strings.Join(ops.EmailStatusOptions, ", "))
	function := fs.String("function", "", "Functional levels, comma separated")
	seniority := fs.String("seniority", "", "Seniority levels, comma separated")
	funding := fs.String("funding", "", "Funding stages, comma separated")
	size := fs.String("size", "", `Employee ranges, e.g. "51-100,10001+"`)
	maxItems := fs.Int("max", env.cfg.MaxItems, "Maximum number of leads")
	asJSON := fs.Bool("json", false, "Print leads as JSON")
	noSave := fs.Bool("no-save", false, "Do not keep the run in the saved runs")
	fs.Parse(args)

	filters := ops.Filters{
		Location:        *location,
		EmailStatus:     splitList(*emailStatus),
		FunctionalLevel: splitList(*function),
		SeniorityLevel:  splitList(*seniority),
		Funding:         splitList(*funding),
		Size:            splitList(*size),
		FetchCount:      *maxItems,
	}

	var req model.JobRequest
	if strings.TrimSpace(*website) != "" {
		r, err := ops.BuildWebsiteRequest(*website, filters)
		if err != nil {
			return err
		}
		req = r
	} else {
		req = ops.BuildRequest(filters)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary := ops.Summary(req)
	fmt.Fprintf(os.Stderr, "Searching %s\n", summary)

	last := ""
	sink := func(p api.Progress) {
		if s := p.String(); s != last {
			last = s
			fmt.Fprintln(os.Stderr, s)
		}
	}
	records, err := env.invoker.Invoke(ctx, env.cfg.ActorID, api.Credentials{Token: env.cfg.APIToken}, req, sink)
	if err != nil {
		return err
	}
	leads := normalize.All(records)

	if !*noSave {
		rec, err := env.runs.Append(ctx, leads, summary)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: run not saved: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Saved as %s\n", rec.ID)
		}
	}

	out := stdout(os.Stdout)
	if *asJSON {
		return out.json(leads)
	}
	if len(leads) == 0 {
		fmt.Fprintln(os.Stderr, "No results found. Try adjusting your filters.")
		return nil
	}
	if err := out.leads(leads); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d leads, %d with email\n", len(leads), len(ops.CollectEmails(leads)))
	return nil
}

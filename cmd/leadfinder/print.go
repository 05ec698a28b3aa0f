package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cli/go-gh/v2/pkg/jsonpretty"
	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/term"

	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/ui"
)

// output describes where tables go and how they may be styled.
type output struct {
	w     io.Writer
	isTTY bool
	color bool
	width int
}

func stdout(w io.Writer) output {
	t := term.FromEnv()
	width, _, err := t.Size()
	if err != nil || width <= 0 {
		width = 120
	}
	return output{w: w, isTTY: t.IsTerminalOutput(), color: t.IsColorEnabled(), width: width}
}

func (o output) json(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return jsonpretty.Format(o.w, bytes.NewReader(data), "  ", o.color)
}

func (o output) leads(leads []model.Lead) error {
	tp := tableprinter.New(o.w, o.isTTY, o.width)
	tp.AddHeader([]string{"NAME", "EMAIL", "TITLE", "COMPANY", "LOCATION", "LINKEDIN"})
	for _, l := range leads {
		tp.AddField(ui.Dash(l.Name))
		tp.AddField(ui.Dash(l.Email))
		tp.AddField(ui.Dash(l.Title))
		tp.AddField(ui.Dash(l.Company))
		tp.AddField(ui.Dash(l.Location))
		tp.AddField(ui.Dash(l.LinkedIn))
		tp.EndRow()
	}
	return tp.Render()
}

func (o output) records(recs []model.RunRecord) error {
	tp := tableprinter.New(o.w, o.isTTY, o.width)
	tp.AddHeader([]string{"ID", "SAVED", "LEADS", "EMAILS", "SEARCH"})
	for _, r := range recs {
		tp.AddField(r.ID)
		tp.AddField(r.Timestamp.Local().Format("2006-01-02 15:04"))
		tp.AddField(strconv.Itoa(r.Count))
		tp.AddField(strconv.Itoa(r.WithEmail()))
		tp.AddField(r.FilterSummary)
		tp.EndRow()
	}
	return tp.Render()
}

// runSummary is the JSON shape of a saved run without its leads.
type runSummary struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	Count         int    `json:"count"`
	WithEmail     int    `json:"withEmail"`
	FilterSummary string `json:"filterSummary"`
}

func summarize(recs []model.RunRecord) []runSummary {
	out := make([]runSummary, len(recs))
	for i, r := range recs {
		out[i] = runSummary{
			ID:            r.ID,
			Timestamp:     r.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
			Count:         r.Count,
			WithEmail:     r.WithEmail(),
			FilterSummary: r.FilterSummary,
		}
	}
	return out
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

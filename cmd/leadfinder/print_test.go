package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/altinukshini/leadfinder/internal/model"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a, b,,c ", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLeadsTableWithoutTTY(t *testing.T) {
	var buf bytes.Buffer
	out := output{w: &buf, width: 80}
	err := out.leads([]model.Lead{{Name: "Ada Lovelace", Email: "ada@x.io"}})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("non-tty output should have no header, got %q", buf.String())
	}
	if lines[0] != "Ada Lovelace\tada@x.io\t-\t-\t-\t-" {
		t.Errorf("row = %q", lines[0])
	}
}

func TestRecordsJSON(t *testing.T) {
	var buf bytes.Buffer
	out := output{w: &buf}
	recs := []model.RunRecord{{
		ID:            "r1",
		Timestamp:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Count:         2,
		FilterSummary: "location: berlin (max 100)",
		Leads:         []model.Lead{{Email: "a@b.c"}, {}},
	}}
	if err := out.json(summarize(recs)); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"id": "r1"`, `"withEmail": 1`, `"timestamp": "2026-01-02T03:04:05Z"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("json missing %s:\n%s", want, buf.String())
		}
	}
}

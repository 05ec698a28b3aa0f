package ops

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/altinukshini/leadfinder/internal/api"
	"github.com/altinukshini/leadfinder/internal/model"
)

func TestBuildRequest(t *testing.T) {
	got := BuildRequest(Filters{
		Location:       " New York, , BERLIN ",
		SeniorityLevel: []string{"director", " "},
		Funding:        []string{" "},
		FetchCount:     50,
	})
	want := model.JobRequest{
		ContactLocation: []string{"new york", "berlin"},
		SeniorityLevel:  []string{"director"},
		FetchCount:      50,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildRequest() = %+v, want %+v", got, want)
	}
}

func TestBuildRequestSendsRawSizeChips(t *testing.T) {
	req := BuildRequest(Filters{Size: []string{"1-10", "10001-20000"}})
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"size":["1-10","10001-20000"]`) {
		t.Errorf("body = %s, want the chips unchanged", body)
	}
	if strings.Contains(string(body), "employee") {
		t.Errorf("employee bounds leaked into body: %s", body)
	}
	if !strings.Contains(Summary(req), "employees: 200-20000") {
		t.Errorf("Summary() = %q", Summary(req))
	}
}

func TestBuildRequestEmpty(t *testing.T) {
	got := BuildRequest(Filters{})
	if !reflect.DeepEqual(got, model.JobRequest{}) {
		t.Errorf("empty filters should give an empty request, got %+v", got)
	}
}

func TestCleanDomain(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"google.com", "google.com"},
		{"  HTTPS://www.Example.com/about?x=1 ", "example.com"},
		{"http://shop.acme.io?ref=a", "shop.acme.io"},
		{"www.", ""},
		{"https://", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CleanDomain(tt.in); got != tt.want {
				t.Errorf("CleanDomain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWebsites(t *testing.T) {
	got := ParseWebsites("a.com,\nhttps://www.b.com/x\n\n, ,c.org")
	want := []string{"a.com", "b.com", "c.org"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseWebsites() = %v, want %v", got, want)
	}
}

func TestBuildWebsiteRequest(t *testing.T) {
	f := Filters{
		Location:        "ignored",
		EmailStatus:     []string{"validated"},
		SeniorityLevel:  []string{"vp"},
		FunctionalLevel: []string{"sales"},
		Funding:         []string{"seed"},
		FetchCount:      25,
	}
	got, err := BuildWebsiteRequest("example.com", f)
	if err != nil {
		t.Fatalf("BuildWebsiteRequest: %v", err)
	}
	want := model.JobRequest{
		Website:         []string{"example.com"},
		EmailStatus:     []string{"validated"},
		FunctionalLevel: []string{"sales"},
		SeniorityLevel:  []string{"vp"},
		FetchCount:      25,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestBuildWebsiteRequestValidation(t *testing.T) {
	tests := []struct {
		name, input, msg string
	}{
		{"empty", "  \n ", "Please enter at least one website or domain"},
		{"nothing usable", "https://, www.", "No valid domains found. Enter domains like google.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildWebsiteRequest(tt.input, Filters{})
			var ve *api.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if ve.Message != tt.msg {
				t.Errorf("message = %q, want %q", ve.Message, tt.msg)
			}
		})
	}
}

func TestEmployeeBounds(t *testing.T) {
	tests := []struct {
		name   string
		sizes  []string
		lo, hi int
		ok     bool
	}{
		{name: "none", sizes: nil},
		{name: "garbage", sizes: []string{"many"}},
		{name: "small selection is clamped", sizes: []string{"1-10", "11-20"}, lo: 200, hi: 200, ok: true},
		{name: "range", sizes: []string{"201-500", "51-100", "501-1000"}, lo: 200, hi: 1000, ok: true},
		{name: "open ended", sizes: []string{"501-1000", "50000+"}, lo: 200, hi: 0, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := EmployeeBounds(tt.sizes)
			if lo != tt.lo || hi != tt.hi || ok != tt.ok {
				t.Errorf("EmployeeBounds(%v) = %d, %d, %v; want %d, %d, %v", tt.sizes, lo, hi, ok, tt.lo, tt.hi, tt.ok)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		req  model.JobRequest
		want string
	}{
		{name: "empty", req: model.JobRequest{}, want: "no filters (max 100)"},
		{
			name: "websites",
			req:  model.JobRequest{Website: []string{"a.com", "b.com"}, FetchCount: 10},
			want: "websites: a.com, b.com (max 10)",
		},
		{
			name: "filters",
			req: model.JobRequest{
				ContactLocation: []string{"berlin"},
				SeniorityLevel:  []string{"vp", "director"},
				Size:            []string{"201-500"},
			},
			want: "location: berlin; seniority: vp, director; employees: 200-500 (max 100)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.req); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

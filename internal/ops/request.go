package ops

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/altinukshini/leadfinder/internal/api"
	"github.com/altinukshini/leadfinder/internal/model"
)

// Chip values accepted by the lead finder actor.
var (
	EmailStatusOptions     = []string{"validated", "not_validated", "unknown"}
	FunctionalLevelOptions = []string{"c_suite", "finance", "product", "engineering", "design", "education", "human_resources", "information_technology", "legal", "marketing", "operations", "sales", "support"}
	SeniorityOptions       = []string{"founder", "owner", "c_suite", "partner", "vp", "head", "director", "manager", "senior", "entry", "trainee"}
	FundingOptions         = []string{"seed", "angel", "series_a", "series_b", "series_c", "series_d", "series_e", "series_f", "venture", "debt", "convertible", "pe", "other"}
	SizeOptions            = []string{"1-10", "11-20", "21-50", "51-100", "101-200", "201-500", "501-1000", "1001-2000", "2001-5000", "5001-10000", "10001-20000", "20001-50000", "50000+"}
)

// Filters is what the filters form collects.
type Filters struct {
	Location        string
	EmailStatus     []string
	FunctionalLevel []string
	SeniorityLevel  []string
	Funding         []string
	Size            []string
	FetchCount      int
}

// BuildRequest turns form filters into the actor input. Empty selections
// are left out.
func BuildRequest(f Filters) model.JobRequest {
	return model.JobRequest{
		ContactLocation: splitLocation(f.Location),
		EmailStatus:     nonEmpty(f.EmailStatus),
		FunctionalLevel: nonEmpty(f.FunctionalLevel),
		SeniorityLevel:  nonEmpty(f.SeniorityLevel),
		Funding:         nonEmpty(f.Funding),
		Size:            nonEmpty(f.Size),
		FetchCount:      f.FetchCount,
	}
}

func splitLocation(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func nonEmpty(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var (
	schemeRe     = regexp.MustCompile(`^https?://`)
	websiteSepRe = regexp.MustCompile(`[,\n]+`)
)

// CleanDomain reduces a URL or host to a bare lowercase domain. It returns
// "" when nothing is left.
func CleanDomain(input string) string {
	d := strings.ToLower(strings.TrimSpace(input))
	d = schemeRe.ReplaceAllString(d, "")
	d = strings.TrimPrefix(d, "www.")
	d, _, _ = strings.Cut(d, "/")
	d, _, _ = strings.Cut(d, "?")
	return d
}

// ParseWebsites splits free text on commas and newlines and cleans every entry.
func ParseWebsites(input string) []string {
	var out []string
	for _, s := range websiteSepRe.Split(input, -1) {
		if d := CleanDomain(s); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// BuildWebsiteRequest builds a company-website search. Email status,
// functional level and seniority filters are carried along.
func BuildWebsiteRequest(input string, f Filters) (model.JobRequest, error) {
	if strings.TrimSpace(input) == "" {
		return model.JobRequest{}, &api.ValidationError{Field: "website", Message: "Please enter at least one website or domain"}
	}
	sites := ParseWebsites(input)
	if len(sites) == 0 {
		return model.JobRequest{}, &api.ValidationError{Field: "website", Message: "No valid domains found. Enter domains like google.com"}
	}
	return model.JobRequest{
		Website:         sites,
		EmailStatus:     nonEmpty(f.EmailStatus),
		FunctionalLevel: nonEmpty(f.FunctionalLevel),
		SeniorityLevel:  nonEmpty(f.SeniorityLevel),
		FetchCount:      f.FetchCount,
	}, nil
}

// MinEmployees is the lower bound EmployeeBounds always reports.
// Product has not confirmed whether this is a business rule. The bounds
// only feed Summary; the actor receives the raw size chips, never the
// clamped range.
const MinEmployees = 200

// EmployeeBounds parses size chips such as "11-20" or "50000+". hi is 0
// when the range is open ended. ok is false when no chip parses.
func EmployeeBounds(sizes []string) (lo, hi int, ok bool) {
	open := false
	for _, s := range sizes {
		_, upper, parsed := parseSize(s)
		if !parsed {
			continue
		}
		ok = true
		if upper == 0 {
			open = true
		} else if upper > hi {
			hi = upper
		}
	}
	if !ok {
		return 0, 0, false
	}
	if open {
		hi = 0
	}
	lo = MinEmployees
	if hi != 0 && hi < lo {
		hi = lo
	}
	return lo, hi, true
}

func parseSize(s string) (lo, hi int, ok bool) {
	s = strings.TrimSpace(s)
	if rest, found := strings.CutSuffix(s, "+"); found {
		n, err := strconv.Atoi(rest)
		return n, 0, err == nil
	}
	a, b, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	lo, err1 := strconv.Atoi(a)
	hi, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// Summary describes req in one line for the saved runs list.
func Summary(req model.JobRequest) string {
	var parts []string
	add := func(label string, vals []string) {
		if len(vals) > 0 {
			parts = append(parts, label+": "+strings.Join(vals, ", "))
		}
	}
	add("websites", req.Website)
	add("location", req.ContactLocation)
	add("email", req.EmailStatus)
	add("function", req.FunctionalLevel)
	add("seniority", req.SeniorityLevel)
	add("funding", req.Funding)
	if lo, hi, ok := EmployeeBounds(req.Size); ok {
		if hi == 0 {
			parts = append(parts, fmt.Sprintf("employees: %d+", lo))
		} else {
			parts = append(parts, fmt.Sprintf("employees: %d-%d", lo, hi))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "no filters")
	}
	return fmt.Sprintf("%s (max %d)", strings.Join(parts, "; "), req.MaxItems())
}

package model

// DefaultFetchCount is used when a request does not set FetchCount.
const DefaultFetchCount = 100

// JobRequest is the actor input. Unset filters are omitted from the JSON body.
type JobRequest struct {
	ContactLocation []string `json:"contact_location,omitempty"`
	EmailStatus     []string `json:"email_status,omitempty"`
	FunctionalLevel []string `json:"functional_level,omitempty"`
	SeniorityLevel  []string `json:"seniority_level,omitempty"`
	Funding         []string `json:"funding,omitempty"`
	Size            []string `json:"size,omitempty"`
	Website         []string `json:"website,omitempty"`
	FetchCount      int      `json:"fetch_count,omitempty"`
}

// MaxItems is the item cap sent with the synchronous call.
func (r JobRequest) MaxItems() int {
	if r.FetchCount <= 0 {
		return DefaultFetchCount
	}
	return r.FetchCount
}

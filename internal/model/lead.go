package model

// ExternalRecord is one item of a remote dataset. Its keys vary between
// dataset versions.
type ExternalRecord map[string]any

// Lead is the canonical contact produced from an ExternalRecord. Empty
// string means unknown.
type Lead struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Title    string         `json:"title"`
	Company  string         `json:"company"`
	Location string         `json:"location"`
	LinkedIn string         `json:"linkedin"`
	Phone    string         `json:"phone"`
	Raw      ExternalRecord `json:"raw,omitempty"`
}

// Fields returns the canonical values in column order.
func (l Lead) Fields() []string {
	return []string{l.Name, l.Email, l.Title, l.Company, l.Location, l.LinkedIn, l.Phone}
}

// LeadColumns names the canonical fields in the order returned by Fields.
var LeadColumns = []string{"name", "email", "title", "company", "location", "linkedin", "phone"}

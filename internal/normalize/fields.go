package normalize

// Candidate keys per canonical field, tried in order. The first key with a
// non-empty value wins. Saved runs depend on this order; append new
// spellings at the end.
var (
	firstNameKeys = []string{"first_name", "firstName", "FirstName", "first"}
	lastNameKeys  = []string{"last_name", "lastName", "LastName", "last"}
	fullNameKeys  = []string{"full_name", "fullName", "name", "Name"}

	emailKeys   = []string{"email", "Email", "emailAddress", "email_address"}
	titleKeys   = []string{"title", "Title", "job_title", "jobTitle", "headline"}
	companyKeys = []string{"company", "Company", "organization", "company_name", "companyName", "organization_name"}

	cityKeys     = []string{"city", "City"}
	stateKeys    = []string{"state", "State"}
	countryKeys  = []string{"country", "Country"}
	locationKeys = []string{"location", "Location", "contact_location"}

	linkedinKeys = []string{"linkedin", "linkedin_url", "linkedinUrl", "LinkedIn", "linkedIn"}
	phoneKeys    = []string{"phone", "Phone", "phone_number", "phoneNumber", "mobile_number"}
)

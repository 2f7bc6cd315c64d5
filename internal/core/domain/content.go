package domain

// SectionContent is the static marketing copy behind a section.
// The core never renders it, adapters serve it verbatim.
type SectionContent struct {
	Section  Section
	Title    string
	Lead     string
	Body     []string
	Contacts *ContactInfo
}

type ContactInfo struct {
	Address string
	Phone   string
	Email   string
	Hours   string
}

package domain

import "fmt"

// Section selects which static view is currently rendered.
// Exactly one section is active at a time.
type Section string

const (
	SectionHome    Section = "home"
	SectionCatalog Section = "catalog"
	SectionAbout   Section = "about"
	SectionPromo   Section = "promo"
	SectionContact Section = "contact"
)

func Sections() []Section {
	return []Section{
		SectionHome,
		SectionCatalog,
		SectionAbout,
		SectionPromo,
		SectionContact,
	}
}

func ParseSection(s string) (Section, error) {
	switch v := Section(s); v {
	case SectionHome, SectionCatalog, SectionAbout,
		SectionPromo, SectionContact:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

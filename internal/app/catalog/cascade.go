package catalog

// Selection is the current state of the cascading unit/subject pickers.
type Selection struct {
	Unit    string `json:"school"`
	Subject string `json:"course"`
}

// Cascade is the set of valid next-level choices for a Selection. A disabled
// level mirrors the original form behavior: the picker is greyed out until
// its parent has a value.
type Cascade struct {
	Subjects        []string `json:"courses"`
	SiteIDs         []string `json:"courseSites"`
	SubjectsEnabled bool     `json:"coursesEnabled"`
	SiteIDsEnabled  bool     `json:"courseSitesEnabled"`
}

// Resolve derives the valid choices for sel from idx. It is a pure function
// of its inputs: clearing the unit resets both child levels, clearing the
// subject resets only the site level, and a subject that does not belong to
// the selected unit degrades to an empty, enabled-but-useless site list
// rather than an error.
func Resolve(idx *Index, sel Selection) Cascade {
	var c Cascade

	if sel.Unit == "" {
		return c
	}

	c.Subjects = idx.Subjects(sel.Unit)
	c.SubjectsEnabled = true

	if sel.Subject == "" {
		return c
	}

	c.SiteIDs = idx.SiteIDs(sel.Unit, sel.Subject)
	c.SiteIDsEnabled = true
	return c
}

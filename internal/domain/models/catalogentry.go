package models

// CatalogEntry is one row of the uploaded course catalog. The JSON keys match
// the source spreadsheet column names so the upload contract is preserved.
// Duplicate (unit, subject) pairs are expected: one subject can have several
// course sites.
type CatalogEntry struct {
	Unit    string `bson:"unit" json:"DEPT"`
	Subject string `bson:"subject" json:"SUBJ_CODE"`
	SiteID  string `bson:"site_id,omitempty" json:"COURSE_SITE_ID,omitempty"`

	// Extra carries any additional spreadsheet columns through opaquely.
	Extra map[string]string `bson:"extra,omitempty" json:"extra,omitempty"`
}

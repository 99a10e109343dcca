package models

// Platform labels recognized by the dashboard distribution. Records carrying
// any other label (or none) are left out of the distribution rather than
// bucketed as "Other".
const (
	PlatformExamena    = "Examena"
	PlatformNTULearn   = "NTULearn with LDB"
	PlatformGradescope = "Gradescope"
)

// LegacyPlatformLDB is the pre-migration label for PlatformNTULearn; the
// schema-ensure step rewrites it in place.
const LegacyPlatformLDB = "Respondus Lock Down Browser"

// KnownPlatforms lists the platform labels in display order.
func KnownPlatforms() []string {
	return []string{PlatformExamena, PlatformNTULearn, PlatformGradescope}
}

// KnownPlatform reports whether p is one of the recognized labels.
func KnownPlatform(p string) bool {
	switch p {
	case PlatformExamena, PlatformNTULearn, PlatformGradescope:
		return true
	}
	return false
}

package core

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

var slugifyRegex1 = regexp.MustCompile(`\(.*\)`)
var slugifyRegex2 = regexp.MustCompile(` - .+`)
var slugifyRegex3 = regexp.MustCompile(`[^a-z\d]`)
var slugifyRegex4 = regexp.MustCompile(`-+`)
var slugifyRegex5 = regexp.MustCompile(`^-|-$`)

// SlugifyName derives a project slug from a display name, used when a project has no slug of its own
func SlugifyName(name string) string {
	lower := strings.ToLower(name)
	noBrackets := slugifyRegex1.ReplaceAllString(lower, "")
	noSuffix := slugifyRegex2.ReplaceAllString(noBrackets, "")
	limitedChars := slugifyRegex3.ReplaceAllString(noSuffix, "-")
	noDuplicateDashes := slugifyRegex4.ReplaceAllString(limitedChars, "-")
	noLeadingTrailingDashes := slugifyRegex5.ReplaceAllString(noDuplicateDashes, "")
	return noLeadingTrailingDashes
}

const (
	DataPackSlugPrefix    = "mr_"
	DataPackSlugMaxLength = 63
	SanitizedIDLength     = 8
)

// nonWordRegex uses ECMAScript semantics so \W is exactly [^A-Za-z0-9_]
var nonWordRegex = regexp2.MustCompile(`\W`, regexp2.ECMAScript)

// DataPackSlug turns a project slug into a mod id accepted by all three loaders.
// Only the first hyphen becomes an underscore; any other non-word character is dropped.
func DataPackSlug(projectSlug string) string {
	replaced := strings.Replace(projectSlug, "-", "_", 1)
	stripped, err := nonWordRegex.Replace(replaced, "", -1, -1)
	if err != nil {
		// only a match timeout can fail here, and none is configured
		panic(err)
	}
	return truncate(DataPackSlugPrefix+stripped, DataPackSlugMaxLength)
}

// LoaderVersionNumber forces a version number to begin with a digit, as FML requires
func LoaderVersionNumber(versionNumber string) string {
	if startsWithDigit(versionNumber) {
		return versionNumber
	}
	return "1-" + versionNumber
}

// SanitizeClassID makes a project id usable as a Java package segment
func SanitizeClassID(projectID string) string {
	id := projectID
	if startsWithDigit(id) {
		id = "_" + id
	}
	return truncate(id, SanitizedIDLength)
}

// IconPath is the archive path loaders read the pack icon from
func IconPath(project Project) string {
	return project.Slug + "_pack.png"
}

// ProjectURL is the public page of a project on the site
func ProjectURL(siteURL string, project Project) string {
	ref := project.Slug
	if ref == "" {
		ref = project.ID
	}
	return siteURL + "/" + project.ProjectType + "/" + ref
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

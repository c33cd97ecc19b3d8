package domain

import "strings"

// NormalizeSlug produces the canonical slug form: lowercase, spaces replaced
// with underscores, apostrophes removed. Runs before every product insert and
// update so the stored slug is always canonical.
func NormalizeSlug(slug string) string {
	slug = strings.ToLower(slug)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "'", "")
	return slug
}

// SlugFor returns the slug for a product: the given slug when present,
// otherwise one derived from the title. Either way the result is normalized.
func SlugFor(title, slug string) string {
	if slug == "" {
		slug = title
	}
	return NormalizeSlug(slug)
}

// NormalizeEmail lowercases and trims an email before every user write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

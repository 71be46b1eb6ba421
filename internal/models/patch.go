package models

import "time"

// Patch is a sparse update: only the fields present in it are written.
type Patch map[string]any

// Set records a field assignment and returns the patch for chaining.
func (p Patch) Set(field string, value any) Patch {
	p[field] = value
	return p
}

// SetIfNotEmpty assigns value only when it is a non-empty string.
func (p Patch) SetIfNotEmpty(field, value string) Patch {
	if value != "" {
		p[field] = value
	}
	return p
}

// Has reports whether field is part of the patch.
func (p Patch) Has(field string) bool {
	_, ok := p[field]
	return ok
}

// Touch stamps updatedAt.
func (p Patch) Touch(now time.Time) Patch {
	return p.Set("updatedAt", now)
}

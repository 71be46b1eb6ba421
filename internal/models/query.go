package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ListQuery carries the optional filters of a user listing. Nil / empty
// fields mean "no constraint".
type ListQuery struct {
	Skip         int64   `json:"skip"`
	Limit        int64   `json:"limit"`
	ActiveStatus *bool   `json:"activeStatus"`
	UserType     string  `json:"userType"`
	SearchKey    string  `json:"searchKey"`
	SortBy       *SortBy `json:"sortBy"`
}

// SortBy names a single sort key.
type SortBy struct {
	Field string    `json:"field"`
	Order SortOrder `json:"order"`
}

// SortOrder is 1 for ascending and -1 for descending.
type SortOrder int

const (
	SortAscending  SortOrder = 1
	SortDescending SortOrder = -1
)

// UnmarshalJSON accepts 1, -1, "asc", "desc", "ascending" and "descending".
func (o *SortOrder) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		return o.set(n)
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("sort order: %w", err)
	}
	parsed, err := ParseSortOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o *SortOrder) set(n int) error {
	switch {
	case n > 0:
		*o = SortAscending
	case n < 0:
		*o = SortDescending
	default:
		return fmt.Errorf("sort order: %d is not a direction", n)
	}
	return nil
}

// ParseSortOrder reads the textual forms used in query strings.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "asc", "ascending":
		return SortAscending, nil
	case "-1", "desc", "descending", "":
		return SortDescending, nil
	}
	return 0, fmt.Errorf("sort order: unknown value %q", s)
}

// ListResult is a page of users together with the unpaginated match count.
type ListResult struct {
	Total int64  `json:"total"`
	Users []User `json:"users"`
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortOrderUnmarshal(t *testing.T) {
	testCases := []struct {
		raw      string
		expected SortOrder
	}{
		{`1`, SortAscending},
		{`-1`, SortDescending},
		{`"asc"`, SortAscending},
		{`"DESC"`, SortDescending},
		{`"ascending"`, SortAscending},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			var o SortOrder
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &o))
			assert.Equal(t, tc.expected, o)
		})
	}

	var o SortOrder
	assert.Error(t, json.Unmarshal([]byte(`0`), &o))
	assert.Error(t, json.Unmarshal([]byte(`"sideways"`), &o))
	assert.Error(t, json.Unmarshal([]byte(`true`), &o))
}

func TestListQueryDistinguishesFalseFromAbsent(t *testing.T) {
	var absent, inactive ListQuery
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"activeStatus":false,"sortBy":{"field":"fullName","order":"asc"}}`), &inactive))

	assert.Nil(t, absent.ActiveStatus)
	require.NotNil(t, inactive.ActiveStatus)
	assert.False(t, *inactive.ActiveStatus)
	assert.Equal(t, &SortBy{Field: "fullName", Order: SortAscending}, inactive.SortBy)
}

func TestPatch(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := Patch{}
	p.SetIfNotEmpty("name", "").SetIfNotEmpty("mobile", "0900").Touch(now)

	assert.False(t, p.Has("name"))
	assert.Equal(t, Patch{"mobile": "0900", "updatedAt": now}, p)
}

func TestUserTypeValid(t *testing.T) {
	for _, ut := range UserTypes {
		assert.True(t, ut.Valid(), ut)
	}
	assert.False(t, UserType("nurse").Valid())
}

func TestUserHidesPassword(t *testing.T) {
	b, err := json.Marshal(User{FullName: "A", Password: "$2a$hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.NotContains(t, string(b), "password")
}

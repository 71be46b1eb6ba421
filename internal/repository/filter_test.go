package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/clinic-records/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestListFilter(t *testing.T) {
	johnRegex := primitive.Regex{Pattern: "john", Options: "i"}
	searchJohn := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "fullName", Value: johnRegex}},
		bson.D{{Key: "email", Value: johnRegex}},
		bson.D{{Key: "phone", Value: johnRegex}},
	}}}

	testCases := []struct {
		name     string
		query    models.ListQuery
		expected bson.D
	}{
		{
			name:     "No filters matches everything",
			query:    models.ListQuery{Limit: 10, Skip: 20},
			expected: bson.D{},
		},
		{
			name:     "Search key ORs three fields",
			query:    models.ListQuery{SearchKey: "john"},
			expected: bson.D{{Key: "$and", Value: bson.A{searchJohn}}},
		},
		{
			name:  "False active status is still a filter",
			query: models.ListQuery{ActiveStatus: boolPtr(false)},
			expected: bson.D{{Key: "$and", Value: bson.A{
				bson.D{{Key: "activeStatus", Value: false}},
			}}},
		},
		{
			name:  "All clauses are ANDed",
			query: models.ListQuery{SearchKey: "john", ActiveStatus: boolPtr(true), UserType: "doctor"},
			expected: bson.D{{Key: "$and", Value: bson.A{
				searchJohn,
				bson.D{{Key: "activeStatus", Value: true}},
				bson.D{{Key: "userType", Value: "doctor"}},
			}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ListFilter(tc.query))
		})
	}
}

func TestListFilterQuotesSearchKey(t *testing.T) {
	filter := ListFilter(models.ListQuery{SearchKey: "a.b+(c)"})

	or := filter[0].Value.(bson.A)[0].(bson.D)[0].Value.(bson.A)
	re := or[0].(bson.D)[0].Value.(primitive.Regex)
	assert.Equal(t, `a\.b\+\(c\)`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestSortDocument(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, SortDocument(nil))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, SortDocument(&models.SortBy{}))
	assert.Equal(t, bson.D{{Key: "fullName", Value: 1}},
		SortDocument(&models.SortBy{Field: "fullName", Order: models.SortAscending}))
	assert.Equal(t, bson.D{{Key: "phone", Value: -1}},
		SortDocument(&models.SortBy{Field: "phone"}))
}

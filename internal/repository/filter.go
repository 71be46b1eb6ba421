package repository

import (
	"regexp"

	"github.com/harentsoaR/clinic-records/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// searchFields are matched by a listing's searchKey.
var searchFields = []string{"fullName", "email", "phone"}

// clause is one optional predicate of a listing filter. It reports false when
// the query does not constrain it.
type clause func(q models.ListQuery) (bson.D, bool)

// listClauses are ANDed together by ListFilter.
var listClauses = []clause{
	searchClause,
	activeStatusClause,
	userTypeClause,
}

// ListFilter composes the Mongo filter for a listing. An unconstrained query
// yields an empty document that matches everything.
func ListFilter(q models.ListQuery) bson.D {
	var and bson.A
	for _, c := range listClauses {
		if d, ok := c(q); ok {
			and = append(and, d)
		}
	}
	if len(and) == 0 {
		return bson.D{}
	}
	return bson.D{{Key: "$and", Value: and}}
}

func searchClause(q models.ListQuery) (bson.D, bool) {
	if q.SearchKey == "" {
		return nil, false
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(q.SearchKey), Options: "i"}
	or := make(bson.A, 0, len(searchFields))
	for _, f := range searchFields {
		or = append(or, bson.D{{Key: f, Value: re}})
	}
	return bson.D{{Key: "$or", Value: or}}, true
}

func activeStatusClause(q models.ListQuery) (bson.D, bool) {
	if q.ActiveStatus == nil {
		return nil, false
	}
	return bson.D{{Key: "activeStatus", Value: *q.ActiveStatus}}, true
}

func userTypeClause(q models.ListQuery) (bson.D, bool) {
	if q.UserType == "" {
		return nil, false
	}
	return bson.D{{Key: "userType", Value: q.UserType}}, true
}

// SortDocument returns the sort for a listing, newest first by default.
func SortDocument(s *models.SortBy) bson.D {
	if s == nil || s.Field == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	order := s.Order
	if order == 0 {
		order = models.SortDescending
	}
	return bson.D{{Key: s.Field, Value: int(order)}}
}

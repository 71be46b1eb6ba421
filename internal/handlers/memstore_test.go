package handlers_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/clinic-records/internal/models"
)

// memStore is an in-memory stand-in for the Mongo repository.
type memStore struct {
	mu      sync.Mutex
	users   []models.User
	pingErr error
}

func (s *memStore) Ping(context.Context) error { return s.pingErr }

func (s *memStore) indexOf(id primitive.ObjectID) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *memStore) FindOne(_ context.Context, field string, value any) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		var got any
		switch field {
		case "username":
			got = u.Username
		case "phone":
			got = u.Phone
		case "_id":
			got = u.ID
		}
		if got == value {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.FindOne(ctx, "_id", oid)
}

func (s *memStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, *user)
	created := *user
	return &created, nil
}

func (s *memStore) matching(q models.ListQuery) []models.User {
	key := strings.ToLower(q.SearchKey)
	var out []models.User
	for _, u := range s.users {
		if key != "" &&
			!strings.Contains(strings.ToLower(u.FullName), key) &&
			!strings.Contains(strings.ToLower(u.Email), key) &&
			!strings.Contains(strings.ToLower(u.Phone), key) {
			continue
		}
		if q.ActiveStatus != nil && u.ActiveStatus != *q.ActiveStatus {
			continue
		}
		if q.UserType != "" && string(u.UserType) != q.UserType {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (s *memStore) Count(_ context.Context, q models.ListQuery) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.matching(q))), nil
}

// Find sorts newest first; the other sort keys are covered by the repository tests.
func (s *memStore) Find(_ context.Context, q models.ListQuery) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.matching(q)
	sort.SliceStable(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	if q.Skip > 0 {
		if q.Skip >= int64(len(users)) {
			return nil, nil
		}
		users = users[q.Skip:]
	}
	if q.Limit > 0 && q.Limit < int64(len(users)) {
		users = users[:q.Limit]
	}
	return users, nil
}

func (s *memStore) FindByIDAndUpdate(_ context.Context, id string, patch models.Patch) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(oid)
	if i < 0 {
		return nil, nil
	}
	u := &s.users[i]
	if phone, ok := patch["phone"].(string); ok && u.FullName != "" {
		for j, other := range s.users {
			if j != i && other.FullName != "" && other.Phone == phone {
				return nil, fmt.Errorf("%w: E11000 index: uniq_patient_phone", models.ErrPhoneTaken)
			}
		}
	}
	for field, value := range patch {
		switch field {
		case "phone":
			u.Phone = value.(string)
		case "birthday":
			u.Birthday = value.(string)
		case "userType":
			u.UserType = models.UserType(value.(string))
		case "name":
			u.Name = value.(string)
		case "mobile":
			u.Mobile = value.(string)
		case "photo":
			u.Photo = value.(string)
		case "fullName":
			u.FullName = value.(string)
		case "address":
			u.Address = value.(string)
		case "note":
			u.Note = value.(string)
		case "password":
			u.Password = value.(string)
		case "activeStatus":
			u.ActiveStatus = value.(bool)
		case "updatedAt":
			u.UpdatedAt = value.(time.Time)
		}
	}
	updated := *u
	return &updated, nil
}

func (s *memStore) FindByIDAndDelete(_ context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(oid)
	if i < 0 {
		return nil, nil
	}
	deleted := s.users[i]
	s.users = append(s.users[:i], s.users[i+1:]...)
	return &deleted, nil
}

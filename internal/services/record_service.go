package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/harentsoaR/clinic-records/internal/models"
	"go.uber.org/zap"
)

// UserStore is the persistence the record service needs. Lookups return a
// nil user, not an error, when nothing matches.
type UserStore interface {
	FindOne(ctx context.Context, field string, value any) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Count(ctx context.Context, q models.ListQuery) (int64, error)
	Find(ctx context.Context, q models.ListQuery) ([]models.User, error)
	FindByIDAndUpdate(ctx context.Context, id string, patch models.Patch) (*models.User, error)
	FindByIDAndDelete(ctx context.Context, id string) (*models.User, error)
}

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Options configures a RecordService.
type Options struct {
	DefaultPassword   string
	PasswordMinLength int
	Now               func() time.Time
}

// RecordService creates, lists, updates and deletes employee and patient records.
type RecordService struct {
	store           UserStore
	hasher          PasswordHasher
	logger          *zap.Logger
	validate        *validator.Validate
	defaultPassword string
	minPasswordLen  int
	now             func() time.Time
}

func NewRecordService(store UserStore, hasher PasswordHasher, logger *zap.Logger, opts Options) *RecordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &RecordService{
		store:           store,
		hasher:          hasher,
		logger:          logger,
		validate:        validator.New(),
		defaultPassword: opts.DefaultPassword,
		minPasswordLen:  opts.PasswordMinLength,
		now:             opts.Now,
	}
}

type CreateUserInput struct {
	Username string          `json:"username" validate:"required"`
	Email    string          `json:"email" validate:"required"`
	Phone    string          `json:"phone" validate:"required"`
	UserType models.UserType `json:"userType" validate:"required"`
}

type CreatePatientInput struct {
	FullName string `json:"fullName" validate:"required"`
	Birthday string `json:"birthday" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
	Note     string `json:"note"`
}

type UpdateDetailsInput struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Photo  string `json:"photo"`
}

type UpdateStatusInput struct {
	ActiveStatus *bool `json:"activeStatus"`
}

// CreateUser registers an employee account with the default password.
func (s *RecordService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	if !in.UserType.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidUserType, in.UserType)
	}

	existing, err := s.store.FindOne(ctx, "username", in.Username)
	if err != nil {
		s.logger.Error("username lookup failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrUsernameTaken
	}

	hashed, err := s.hashDefaultPassword()
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	user, err := s.store.Create(ctx, &models.User{
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		UserType:     in.UserType,
		Password:     hashed,
		ActiveStatus: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return s.finishCreate(user, err, models.ErrUsernameTaken)
}

// CreatePatient registers a patient account. Patients are always of type user
// and are unique by phone.
func (s *RecordService) CreatePatient(ctx context.Context, in CreatePatientInput) (*models.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	existing, err := s.store.FindOne(ctx, "phone", in.Phone)
	if err != nil {
		s.logger.Error("phone lookup failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrPhoneTaken
	}

	hashed, err := s.hashDefaultPassword()
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	user, err := s.store.Create(ctx, &models.User{
		FullName:     in.FullName,
		Birthday:     in.Birthday,
		Phone:        in.Phone,
		Address:      in.Address,
		Note:         in.Note,
		UserType:     models.UserTypeUser,
		Password:     hashed,
		ActiveStatus: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return s.finishCreate(user, err, models.ErrPhoneTaken)
}

// finishCreate turns a store-level uniqueness violation into the same error
// the pre-check would have produced.
func (s *RecordService) finishCreate(user *models.User, err error, conflict error) (*models.User, error) {
	if errors.Is(err, models.ErrConflict) {
		return nil, conflict
	}
	if err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, models.ErrCreateFailed
	}
	s.logger.Info("user created",
		zap.String("id", user.ID.Hex()),
		zap.String("userType", string(user.UserType)),
	)
	return user, nil
}

func (s *RecordService) hashDefaultPassword() (string, error) {
	if utf8.RuneCountInString(s.defaultPassword) < s.minPasswordLen {
		return "", models.ErrPasswordTooShort
	}
	hashed, err := s.hasher.Hash(s.defaultPassword)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hashed, nil
}

// GetUsers lists users matching q. An empty page is reported as ErrNoUsers
// together with an empty result.
func (s *RecordService) GetUsers(ctx context.Context, q models.ListQuery) (*models.ListResult, error) {
	if q.Skip < 0 || q.Limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit must not be negative", models.ErrInvalidInput)
	}

	total, err := s.store.Count(ctx, q)
	if err != nil {
		s.logger.Error("count users failed", zap.Error(err))
		return nil, err
	}
	users, err := s.store.Find(ctx, q)
	if err != nil {
		s.logger.Error("find users failed", zap.Error(err))
		return nil, err
	}
	if len(users) == 0 {
		return &models.ListResult{Total: 0, Users: []models.User{}}, models.ErrNoUsers
	}
	return &models.ListResult{Total: total, Users: users}, nil
}

func (s *RecordService) GetUserDetails(ctx context.Context, id string) (*models.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

// UpdateUserDetails writes only the non-empty fields of in.
func (s *RecordService) UpdateUserDetails(ctx context.Context, id string, in UpdateDetailsInput) (*models.User, error) {
	patch := models.Patch{}
	patch.SetIfNotEmpty("name", in.Name).
		SetIfNotEmpty("mobile", in.Mobile).
		SetIfNotEmpty("photo", in.Photo)
	return s.applyPatch(ctx, id, patch)
}

// UpdatePatient writes every field of body. Values for known User fields must
// have the field's type. A plaintext password in body is hashed before it is
// stored; _id and the timestamps are not writable.
func (s *RecordService) UpdatePatient(ctx context.Context, id string, body map[string]any) (*models.User, error) {
	if body == nil {
		return s.applyPatch(ctx, id, nil)
	}
	patch := models.Patch(body)
	delete(patch, "_id")
	delete(patch, "createdAt")
	delete(patch, "updatedAt")
	if err := checkPatchTypes(patch); err != nil {
		return nil, err
	}

	if raw, ok := patch["password"]; ok {
		plain, isString := raw.(string)
		if !isString || plain == "" {
			return nil, fmt.Errorf("%w: password must be a non-empty string", models.ErrInvalidInput)
		}
		hashed, err := s.hasher.Hash(plain)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.Set("password", hashed)
	}
	return s.applyPatch(ctx, id, patch)
}

// stringFields are the User fields stored as strings.
var stringFields = []string{
	"username", "email", "phone", "fullName", "birthday",
	"address", "note", "name", "mobile", "photo",
}

// checkPatchTypes rejects values that could not be read back into a User.
// Fields the User does not know are written as given.
func checkPatchTypes(patch models.Patch) error {
	for _, field := range stringFields {
		if raw, ok := patch[field]; ok {
			if _, isString := raw.(string); !isString {
				return fmt.Errorf("%w: %s must be a string", models.ErrInvalidInput, field)
			}
		}
	}
	if raw, ok := patch["activeStatus"]; ok {
		if _, isBool := raw.(bool); !isBool {
			return fmt.Errorf("%w: activeStatus must be a boolean", models.ErrInvalidInput)
		}
	}
	if raw, ok := patch["userType"]; ok {
		t, isString := raw.(string)
		if !isString || !models.UserType(t).Valid() {
			return fmt.Errorf("%w: %v", models.ErrInvalidUserType, raw)
		}
	}
	return nil
}

// UpdateStatus sets activeStatus when it is given. Either direction is allowed.
func (s *RecordService) UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (*models.User, error) {
	patch := models.Patch{}
	if in.ActiveStatus != nil {
		patch.Set("activeStatus", *in.ActiveStatus)
	}
	return s.applyPatch(ctx, id, patch)
}

func (s *RecordService) applyPatch(ctx context.Context, id string, patch models.Patch) (*models.User, error) {
	if patch == nil {
		return nil, models.ErrUpdateFailed
	}
	patch.Touch(s.timestamp())

	user, err := s.store.FindByIDAndUpdate(ctx, id, patch)
	if errors.Is(err, models.ErrConflict) {
		if errors.Is(err, models.ErrUsernameTaken) {
			return nil, models.ErrUsernameTaken
		}
		return nil, models.ErrPhoneTaken
	}
	if err != nil {
		s.logger.Error("update user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUpdateFailed
	}
	return user, nil
}

// DeleteUser removes the user and returns the deleted record.
func (s *RecordService) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, models.ErrUserNotFound
	}

	user, err := s.store.FindByIDAndDelete(ctx, id)
	if err != nil {
		s.logger.Error("delete user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, models.ErrDeleteFailed
	}
	s.logger.Info("user deleted", zap.String("id", id))
	return user, nil
}

// timestamp is truncated to the millisecond precision Mongo stores.
func (s *RecordService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hackathon-registration-backend/internal/model"
)

// Sentinel errors returned by Store implementations. Callers translate
// these into user-facing outcomes; anything else is an infrastructure
// failure.
var (
	ErrNotFound      = errors.New("submission not found")
	ErrAlreadyExists = errors.New("submission already exists")
)

// Store defines the persistence operations for registration records.
type Store interface {
	// HasSubmission reports whether a record exists for the given email.
	HasSubmission(ctx context.Context, email string) (bool, error)

	// CreateSubmission inserts the record only if no record exists for its
	// email. The insert is atomic at the database: two concurrent calls for
	// the same email cannot both succeed, one receives ErrAlreadyExists.
	CreateSubmission(ctx context.Context, sub *model.FormSubmission) error

	// GetSubmission returns the record for the given email, or ErrNotFound.
	GetSubmission(ctx context.Context, email string) (*model.FormSubmission, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) HasSubmission(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.FormSubmission{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check submission for %s: %w", email, err)
	}
	return count > 0, nil
}

func (s *gormStore) CreateSubmission(ctx context.Context, sub *model.FormSubmission) error {
	// DO NOTHING on conflict keeps the insert a single atomic statement.
	// Zero rows affected means the key was already taken.
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(sub)
	if res.Error != nil {
		return fmt.Errorf("failed to create submission for %s: %w", sub.Email, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (s *gormStore) GetSubmission(ctx context.Context, email string) (*model.FormSubmission, error) {
	var sub model.FormSubmission
	err := s.db.WithContext(ctx).First(&sub, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submission for %s: %w", email, err)
	}
	return &sub, nil
}

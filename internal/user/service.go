package user

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Service handles user business logic
type Service struct {
	repo *Repository
}

// NewService creates a new user service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Upsert creates a user or refreshes name/gender for an existing external id.
// Users are created lazily when first referenced by a vote or proxy vote.
func (s *Service) Upsert(ctx context.Context, req *UpsertUserRequest) (*User, error) {
	isReal := true
	if req.IsReal != nil {
		isReal = *req.IsReal
	}
	return s.repo.Upsert(ctx, req.ExternalID, req.Name, req.Gender, isReal)
}

// GetByID retrieves a user by their ID
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List retrieves all users with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*User, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

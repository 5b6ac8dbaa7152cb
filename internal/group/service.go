package group

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrInvalidMembers = errors.New("groups must contain members")
)

// Service handles group business logic
type Service struct {
	repo *Repository
}

// NewService creates a new group service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves a summary of every group
func (s *Service) List(ctx context.Context) ([]*GroupSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.ListSummaries(), nil
}

// GetByID retrieves a group with its full student records
func (s *Service) GetByID(ctx context.Context, id int64) (*Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	group, ok := s.repo.GetByID(id)
	if !ok {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// Create creates a new group, creating one student per member name.
// Only a blank first member is rejected; an empty member list is accepted
// and yields a group without students.
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*GroupSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(req.Members) > 0 && req.Members[0] == "" {
		return nil, ErrInvalidMembers
	}

	return s.repo.Create(req.GroupName, req.Members), nil
}

// Delete removes a group and all of its students
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !s.repo.Delete(id) {
		return ErrGroupNotFound
	}
	return nil
}

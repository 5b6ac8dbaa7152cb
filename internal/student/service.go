package student

import "context"

// Source supplies every stored student in storage order
type Source interface {
	ListStudents() []Student
}

// Service handles student business logic
type Service struct {
	source Source
}

// NewService creates a new student service backed by the given source
func NewService(source Source) *Service {
	return &Service{source: source}
}

// List retrieves all students across all groups
func (s *Service) List(ctx context.Context) ([]Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	students := s.source.ListStudents()
	if students == nil {
		students = []Student{}
	}
	return students, nil
}

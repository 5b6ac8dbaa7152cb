package group

import (
	"slices"
	"sync"

	"github.com/fkhayef/studentgroups/internal/student"
)

// Repository is the in-memory store of groups and their students.
// Group and student IDs come from two independent counters that start at
// zero and only ever grow, so an ID is never reissued after a delete.
type Repository struct {
	mu            sync.RWMutex
	groups        []*Group
	nextGroupID   int64
	nextStudentID int64
}

// NewRepository creates an empty group repository
func NewRepository() *Repository {
	return &Repository{}
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(id int64) (*Group, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.groups {
		if g.ID == id {
			return g.clone(), true
		}
	}
	return nil, false
}

// ListSummaries returns a summary of every group in creation order
func (r *Repository) ListSummaries() []*GroupSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]*GroupSummary, len(r.groups))
	for i, g := range r.groups {
		summaries[i] = g.ToSummary()
	}
	return summaries
}

// Create stores a new group with one new student per member name
func (r *Repository) Create(groupName string, memberNames []string) *GroupSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := make([]student.Student, len(memberNames))
	for i, name := range memberNames {
		members[i] = student.Student{ID: r.nextStudentID, Name: name}
		r.nextStudentID++
	}

	g := &Group{
		ID:        r.nextGroupID,
		GroupName: groupName,
		Members:   members,
	}
	r.nextGroupID++

	r.groups = append(r.groups, g)
	return g.ToSummary()
}

// ListStudents returns every student, grouped by group in creation order
func (r *Repository) ListStudents() []student.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	students := make([]student.Student, 0)
	for _, g := range r.groups {
		students = append(students, g.Members...)
	}
	return students
}

// Delete removes a group and its students. It reports whether a group was removed.
func (r *Repository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.groups, func(g *Group) bool { return g.ID == id })
	if i < 0 {
		return false
	}

	r.groups = slices.Delete(r.groups, i, i+1)
	return true
}

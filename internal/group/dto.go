package group

import "github.com/fkhayef/studentgroups/internal/student"

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	GroupName string   `json:"groupName"`
	Members   []string `json:"members"`
}

// ToSummary projects a Group onto its GroupSummary
func (g *Group) ToSummary() *GroupSummary {
	ids := make([]int64, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}

	return &GroupSummary{
		ID:        g.ID,
		GroupName: g.GroupName,
		Members:   ids,
	}
}

// clone returns a copy whose member slice is not shared with the store
func (g *Group) clone() *Group {
	members := make([]student.Student, len(g.Members))
	copy(members, g.Members)

	return &Group{
		ID:        g.ID,
		GroupName: g.GroupName,
		Members:   members,
	}
}

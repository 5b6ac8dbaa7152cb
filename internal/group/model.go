package group

import "github.com/fkhayef/studentgroups/internal/student"

// Group represents a named collection of students.
// Members keep the order their names were supplied in at creation.
type Group struct {
	ID        int64             `json:"id"`
	GroupName string            `json:"groupName"`
	Members   []student.Student `json:"members"`
}

// GroupSummary is a Group with members reduced to their student IDs
type GroupSummary struct {
	ID        int64   `json:"id"`
	GroupName string  `json:"groupName"`
	Members   []int64 `json:"members"`
}

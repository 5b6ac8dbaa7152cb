package student

// Student represents a member of exactly one group.
// Students are created only as part of creating their group.
type Student struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

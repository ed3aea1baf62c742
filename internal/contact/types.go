package contact

// CreateInput is the add-contact form. An empty BgColor gets a random one.
type CreateInput struct {
	Username string
	Email    string
	Phone    string
	BgColor  string
}

// UpdateInput edits a contact. Nil fields are left unchanged.
type UpdateInput struct {
	ID       int64
	Username *string
	Email    *string
	Phone    *string
	BgColor  *string
}

// DeleteResult reports the cascade that followed a delete.
type DeleteResult struct {
	UnassignedTasks int `json:"unassigned_tasks"`
}

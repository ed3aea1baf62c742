package repository

import "taskboard/internal/model"

// CreateContactOptions is the body of POST contacts/.
type CreateContactOptions struct {
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	BgColor  string            `json:"bgcolor"`
	Type     model.ContactType `json:"type"`
}

// PatchContactOptions is the body of PATCH contacts/{id}/ and profile/{id}/.
type PatchContactOptions struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	BgColor  *string `json:"bgcolor,omitempty"`
}

func (o PatchContactOptions) IsEmpty() bool {
	return o.Username == nil && o.Email == nil && o.Phone == nil && o.BgColor == nil
}

package model

import "strings"

// ContactType distinguishes plain contacts from the card of a registered account.
type ContactType string

const (
	ContactTypeContact ContactType = "contact"
	ContactTypeUser    ContactType = "user"
)

// Contact is an address-book entry that tasks can be assigned to.
type Contact struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	BgColor  string      `json:"bgcolor"`
	Type     ContactType `json:"type"`
	User     int64       `json:"user,omitempty"` // profile ID when Type is user
}

// Initials returns the upper-cased first letter of each space-separated name part.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

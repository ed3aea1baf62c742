package usecase

import (
	"regexp"
	"strings"

	"taskboard/internal/contact"
)

var (
	usernameRe = regexp.MustCompile(`^[\p{L} ,.'-]{2,100}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe    = regexp.MustCompile(`^\+?(?:[0-9] ?){6,14}[0-9]$`)
)

func validateUsername(v string, vErr *contact.ValidationError) {
	if !usernameRe.MatchString(v) {
		vErr.Add("username", contact.ErrInvalidUsername.Error())
	}
}

func validateEmail(v string, vErr *contact.ValidationError) {
	if !emailRe.MatchString(v) {
		vErr.Add("email", contact.ErrInvalidEmail.Error())
	}
}

func validatePhone(v string, vErr *contact.ValidationError) {
	if !phoneRe.MatchString(v) {
		vErr.Add("phone", contact.ErrInvalidPhone.Error())
	}
}

func validateBgColor(v string, vErr *contact.ValidationError) {
	if !colorRe.MatchString(v) {
		vErr.Add("bgcolor", contact.ErrInvalidBgColor.Error())
	}
}

// validateCreate trims the form and reports every invalid field at once.
func validateCreate(in contact.CreateInput) (contact.CreateInput, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.BgColor = strings.TrimSpace(in.BgColor)

	vErr := &contact.ValidationError{}
	validateUsername(in.Username, vErr)
	validateEmail(in.Email, vErr)
	validatePhone(in.Phone, vErr)
	if in.BgColor != "" {
		validateBgColor(in.BgColor, vErr)
	}

	if len(vErr.Fields) > 0 {
		return contact.CreateInput{}, vErr
	}
	return in, nil
}

func validateUpdate(in contact.UpdateInput) (contact.UpdateInput, error) {
	vErr := &contact.ValidationError{}
	if in.Username != nil {
		in.Username = trimmed(*in.Username)
		validateUsername(*in.Username, vErr)
	}
	if in.Email != nil {
		in.Email = trimmed(*in.Email)
		validateEmail(*in.Email, vErr)
	}
	if in.Phone != nil {
		in.Phone = trimmed(*in.Phone)
		validatePhone(*in.Phone, vErr)
	}
	if in.BgColor != nil {
		in.BgColor = trimmed(*in.BgColor)
		validateBgColor(*in.BgColor, vErr)
	}

	if len(vErr.Fields) > 0 {
		return contact.UpdateInput{}, vErr
	}
	return in, nil
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}

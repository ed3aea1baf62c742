package http

import (
	"taskboard/internal/contact"
	"taskboard/internal/model"
)

type createReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	BgColor  string `json:"bgcolor"`
}

func (r createReq) toInput() contact.CreateInput {
	return contact.CreateInput{
		Username: r.Username,
		Email:    r.Email,
		Phone:    r.Phone,
		BgColor:  r.BgColor,
	}
}

type updateReq struct {
	ID       int64   `json:"-"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	BgColor  *string `json:"bgcolor"`
}

func (r updateReq) toInput() contact.UpdateInput {
	return contact.UpdateInput{
		ID:       r.ID,
		Username: r.Username,
		Email:    r.Email,
		Phone:    r.Phone,
		BgColor:  r.BgColor,
	}
}

type contactResp struct {
	ID       int64             `json:"id"`
	Username string            `json:"username"`
	Initials string            `json:"initials"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	BgColor  string            `json:"bgcolor"`
	Type     model.ContactType `json:"type"`
}

func newContactResp(c model.Contact) contactResp {
	return contactResp{
		ID:       c.ID,
		Username: c.Username,
		Initials: model.Initials(c.Username),
		Email:    c.Email,
		Phone:    c.Phone,
		BgColor:  c.BgColor,
		Type:     c.Type,
	}
}

type detailResp struct {
	Contact contactResp `json:"contact"`
}

// listResp groups contacts under their first letter, as the address book renders them.
type listResp struct {
	Contacts []contactResp `json:"contacts"`
	Groups   []letterGroup `json:"groups"`
	Total    int           `json:"total"`
}

type letterGroup struct {
	Letter string  `json:"letter"`
	IDs    []int64 `json:"ids"`
}

func newListResp(contacts []model.Contact) listResp {
	resp := listResp{
		Contacts: make([]contactResp, 0, len(contacts)),
		Groups:   []letterGroup{},
		Total:    len(contacts),
	}
	for _, c := range contacts {
		resp.Contacts = append(resp.Contacts, newContactResp(c))

		letter := firstLetter(c.Username)
		if n := len(resp.Groups); n > 0 && resp.Groups[n-1].Letter == letter {
			resp.Groups[n-1].IDs = append(resp.Groups[n-1].IDs, c.ID)
			continue
		}
		resp.Groups = append(resp.Groups, letterGroup{Letter: letter, IDs: []int64{c.ID}})
	}
	return resp
}

type deleteResp struct {
	UnassignedTasks int `json:"unassigned_tasks"`
}

func firstLetter(name string) string {
	initials := model.Initials(name)
	if initials == "" {
		return "#"
	}
	return string([]rune(initials)[0])
}

package usecase

import (
	"context"

	"taskboard/internal/contact"
	"taskboard/internal/contact/repository"
	"taskboard/internal/model"
	outbox "taskboard/internal/sync"
	pkgLog "taskboard/pkg/log"
	pkgRemote "taskboard/pkg/remote"
)

var errUnavailable = &pkgRemote.APIError{StatusCode: 503, Body: []byte("unavailable")}

type mockRepo struct {
	contacts []model.Contact
	nextID   int64
	failWith error
	calls    []string
	profiles map[int64]repository.PatchContactOptions
}

func newMockRepo(contacts ...model.Contact) *mockRepo {
	return &mockRepo{
		contacts: contacts,
		nextID:   100,
		profiles: make(map[int64]repository.PatchContactOptions),
	}
}

func (r *mockRepo) ListContacts(ctx context.Context) ([]model.Contact, error) {
	r.calls = append(r.calls, "list")
	if r.failWith != nil {
		return nil, r.failWith
	}
	return append([]model.Contact{}, r.contacts...), nil
}

func (r *mockRepo) CreateContact(ctx context.Context, opt repository.CreateContactOptions) (model.Contact, error) {
	r.calls = append(r.calls, "create")
	if r.failWith != nil {
		return model.Contact{}, r.failWith
	}
	r.nextID++
	c := model.Contact{ID: r.nextID, Username: opt.Username, Email: opt.Email, Phone: opt.Phone, BgColor: opt.BgColor, Type: opt.Type}
	r.contacts = append(r.contacts, c)
	return c, nil
}

func (r *mockRepo) PatchContact(ctx context.Context, id int64, opt repository.PatchContactOptions) (model.Contact, error) {
	r.calls = append(r.calls, "patch")
	if r.failWith != nil {
		return model.Contact{}, r.failWith
	}
	for i := range r.contacts {
		if r.contacts[i].ID == id {
			r.contacts[i] = applyPatch(r.contacts[i], opt)
			return r.contacts[i], nil
		}
	}
	return model.Contact{}, &pkgRemote.APIError{StatusCode: 404}
}

func (r *mockRepo) DeleteContact(ctx context.Context, id int64) error {
	r.calls = append(r.calls, "delete")
	if r.failWith != nil {
		return r.failWith
	}
	for i := range r.contacts {
		if r.contacts[i].ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return &pkgRemote.APIError{StatusCode: 404}
}

func (r *mockRepo) PatchProfile(ctx context.Context, userID int64, opt repository.PatchContactOptions) error {
	r.calls = append(r.calls, "profile")
	if r.failWith != nil {
		return r.failWith
	}
	r.profiles[userID] = opt
	return nil
}

type mockUnassigner struct {
	calls   []int64
	touched int
	err     error
}

func (m *mockUnassigner) UnassignContact(ctx context.Context, sc model.Scope, contactID int64) (int, error) {
	m.calls = append(m.calls, contactID)
	return m.touched, m.err
}

// mockRecorder reports pending[collection] ids from HasPending.
type mockRecorder struct {
	inputs  []outbox.RecordInput
	pending map[string][]int64
}

func (m *mockRecorder) HasPending(collection string, recordID int64) bool {
	for _, id := range m.pending[collection] {
		if id == recordID {
			return true
		}
	}
	return false
}

func (m *mockRecorder) Record(ctx context.Context, in outbox.RecordInput) (outbox.Op, error) {
	m.inputs = append(m.inputs, in)
	return outbox.Op{ID: "op", Collection: in.Collection, Kind: in.Kind, RecordID: in.RecordID}, nil
}

func seedContacts() []model.Contact {
	return []model.Contact{
		{ID: 1, Username: "Zoe Zander", Email: "zoe@example.com", Phone: "+49 111 222333", BgColor: "#111111", Type: model.ContactTypeContact},
		{ID: 2, Username: "Anna Berg", Email: "anna@example.com", Phone: "+49 111 222444", BgColor: "#222222", Type: model.ContactTypeContact},
		{ID: 3, Username: "Me Myself", Email: "me@example.com", Phone: "+49 111 222555", BgColor: "#333333", Type: model.ContactTypeUser, User: 50},
	}
}

func newTestUseCase(repo *mockRepo, tasks *mockUnassigner, rec *mockRecorder) contact.UseCase {
	opts := []Option{WithColorFunc(func() string { return "#ABCDEF" })}
	if rec != nil {
		opts = append(opts, WithOutbox(rec))
	}
	var unassigner contact.TaskUnassigner
	if tasks != nil {
		unassigner = tasks
	}
	return New(pkgLog.NewNop(), repo, unassigner, "de", opts...)
}

func names(contacts []model.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.Username
	}
	return out
}

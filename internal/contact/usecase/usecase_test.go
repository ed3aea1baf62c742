package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/contact"
	"taskboard/internal/model"
	outbox "taskboard/internal/sync"
	pkgRemote "taskboard/pkg/remote"
)

func TestLoadSortsByName(t *testing.T) {
	uc := newTestUseCase(newMockRepo(seedContacts()...), nil, nil)
	require.NoError(t, uc.Load(context.Background()))

	assert.Equal(t, []string{"Anna Berg", "Me Myself", "Zoe Zander"}, names(uc.List(context.Background())))
}

func TestLoadWaitsForMutation(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(newMockRepo(seedContacts()...), nil, nil).(*implUseCase)

	uc.opMu.Lock()
	done := make(chan error, 1)
	go func() { done <- uc.Load(ctx) }()

	select {
	case <-done:
		t.Fatal("Load ran while a mutation held the store")
	case <-time.After(50 * time.Millisecond):
	}

	uc.opMu.Unlock()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Load did not finish")
	}
	assert.Len(t, uc.List(ctx), 3)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(seedContacts()...)
	uc := newTestUseCase(repo, nil, nil)
	require.NoError(t, uc.Load(ctx))

	uc.Reset(ctx)
	assert.Empty(t, uc.List(ctx))
	assert.Equal(t, []string{"list"}, repo.calls)
}

func TestSortIsDeterministicForAccents(t *testing.T) {
	orders := [][]model.Contact{
		{{ID: 1, Username: "Ánna"}, {ID: 2, Username: "Anna"}, {ID: 3, Username: "Bert"}},
		{{ID: 3, Username: "Bert"}, {ID: 2, Username: "Anna"}, {ID: 1, Username: "Ánna"}},
	}

	var results [][]string
	for _, seed := range orders {
		uc := newTestUseCase(newMockRepo(seed...), nil, nil)
		require.NoError(t, uc.Load(context.Background()))
		results = append(results, names(uc.List(context.Background())))
	}

	assert.Equal(t, results[0], results[1])
	assert.Equal(t, "Bert", results[0][2])
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := newMockRepo(seedContacts()...)
		uc := newTestUseCase(repo, nil, nil)
		require.NoError(t, uc.Load(ctx))

		c, err := uc.Create(ctx, model.Scope{}, contact.CreateInput{
			Username: "  Bob Brown ",
			Email:    "bob@example.com",
			Phone:    "+49 170 1234567",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bob Brown", c.Username)
		assert.Equal(t, "#ABCDEF", c.BgColor)
		assert.Equal(t, model.ContactTypeContact, c.Type)

		assert.Equal(t, []string{"Anna Berg", "Bob Brown", "Me Myself", "Zoe Zander"}, names(uc.List(ctx)))
	})

	t.Run("KeepsGivenColor", func(t *testing.T) {
		uc := newTestUseCase(newMockRepo(), nil, nil)
		c, err := uc.Create(ctx, model.Scope{}, contact.CreateInput{
			Username: "Bob", Email: "bob@example.com", Phone: "1234567", BgColor: "#00FF00",
		})
		require.NoError(t, err)
		assert.Equal(t, "#00FF00", c.BgColor)
	})

	t.Run("ValidationReportsEveryField", func(t *testing.T) {
		repo := newMockRepo()
		uc := newTestUseCase(repo, nil, nil)

		_, err := uc.Create(ctx, model.Scope{}, contact.CreateInput{Username: "B", Email: "nope", Phone: "12"})
		vErr, ok := contact.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, vErr.Fields, "username")
		assert.Contains(t, vErr.Fields, "email")
		assert.Contains(t, vErr.Fields, "phone")
		assert.Empty(t, repo.calls)
	})

	t.Run("RemoteFieldError", func(t *testing.T) {
		repo := newMockRepo()
		repo.failWith = &pkgRemote.APIError{
			StatusCode: 400,
			Fields:     map[string][]string{"email": {"contact with this email already exists."}},
		}
		uc := newTestUseCase(repo, nil, nil)

		_, err := uc.Create(ctx, model.Scope{}, contact.CreateInput{Username: "Bob", Email: "bob@example.com", Phone: "1234567"})
		vErr, ok := contact.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, []string{"contact with this email already exists."}, vErr.Fields["email"])
		assert.Empty(t, uc.List(ctx))
	})

	t.Run("RemoteDownIsQueued", func(t *testing.T) {
		repo := newMockRepo()
		repo.failWith = errUnavailable
		rec := &mockRecorder{}
		uc := newTestUseCase(repo, nil, rec)

		_, err := uc.Create(ctx, model.Scope{}, contact.CreateInput{Username: "Bob", Email: "bob@example.com", Phone: "1234567"})
		assert.ErrorIs(t, err, contact.ErrSyncFailed)
		require.Len(t, rec.inputs, 1)
		assert.Equal(t, pkgRemote.CollectionContacts, rec.inputs[0].Collection)
		assert.Equal(t, outbox.KindCreate, rec.inputs[0].Kind)
		assert.Empty(t, uc.List(ctx))
	})
}

func TestRandomColor(t *testing.T) {
	re := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, randomColor())
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("PlainContact", func(t *testing.T) {
		repo := newMockRepo(seedContacts()...)
		uc := newTestUseCase(repo, nil, nil)
		require.NoError(t, uc.Load(ctx))

		name := "Aaron Zander"
		c, err := uc.Update(ctx, model.Scope{}, contact.UpdateInput{ID: 1, Username: &name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Username)
		assert.NotContains(t, repo.calls, "profile")
		assert.Equal(t, "Aaron Zander", uc.List(ctx)[0].Username)
	})

	t.Run("UserContactPatchesProfile", func(t *testing.T) {
		repo := newMockRepo(seedContacts()...)
		uc := newTestUseCase(repo, nil, nil)
		require.NoError(t, uc.Load(ctx))

		phone := "+49 999 888777"
		c, err := uc.Update(ctx, model.Scope{}, contact.UpdateInput{ID: 3, Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, phone, c.Phone)
		assert.Equal(t, model.ContactTypeUser, c.Type)
		require.Contains(t, repo.profiles, int64(50))
		assert.Equal(t, phone, *repo.profiles[50].Phone)
		assert.Equal(t, []string{"list", "profile", "patch"}, repo.calls)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		repo := newMockRepo(seedContacts()...)
		uc := newTestUseCase(repo, nil, nil)
		require.NoError(t, uc.Load(ctx))

		email := "broken"
		_, err := uc.Update(ctx, model.Scope{}, contact.UpdateInput{ID: 1, Email: &email})
		_, ok := contact.AsValidationError(err)
		assert.True(t, ok)
	})

	t.Run("NotFound", func(t *testing.T) {
		uc := newTestUseCase(newMockRepo(), nil, nil)
		name := "Someone"
		_, err := uc.Update(ctx, model.Scope{}, contact.UpdateInput{ID: 9, Username: &name})
		assert.ErrorIs(t, err, contact.ErrContactNotFound)
	})

	t.Run("PendingChangeQueuesBehind", func(t *testing.T) {
		repo := newMockRepo(seedContacts()...)
		rec := &mockRecorder{pending: map[string][]int64{pkgRemote.CollectionProfile: {50}}}
		uc := newTestUseCase(repo, nil, rec)
		require.NoError(t, uc.Load(ctx))

		phone := "+49 999 888777"
		_, err := uc.Update(ctx, model.Scope{}, contact.UpdateInput{ID: 3, Phone: &phone})
		assert.ErrorIs(t, err, contact.ErrSyncFailed)
		assert.ErrorIs(t, err, outbox.ErrQueuedBehind)
		assert.Equal(t, []string{"list"}, repo.calls)

		require.Len(t, rec.inputs, 2)
		assert.Equal(t, pkgRemote.CollectionProfile, rec.inputs[0].Collection)
		assert.Equal(t, int64(50), rec.inputs[0].RecordID)
		assert.Equal(t, pkgRemote.CollectionContacts, rec.inputs[1].Collection)
		assert.Equal(t, int64(3), rec.inputs[1].RecordID)

		c, err := uc.Detail(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "+49 111 222555", c.Phone)
	})

	t.Run("EmptyPatchIsNoop", func(t *testing.T) {
		repo := newMockRepo(seedContacts()...)
		uc := newTestUseCase(repo, nil, nil)
		require.NoError(t, uc.Load(ctx))

		c, err := uc.Update(ctx, model.Scope{}, contact.UpdateInput{ID: 2})
		require.NoError(t, err)
		assert.Equal(t, "Anna Berg", c.Username)
		assert.Equal(t, []string{"list"}, repo.calls)
	})
}

func TestDeleteCascade(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tasks := &mockUnassigner{touched: 2}
		uc := newTestUseCase(newMockRepo(seedContacts()...), tasks, nil)
		require.NoError(t, uc.Load(ctx))

		res, err := uc.Delete(ctx, model.Scope{}, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, res.UnassignedTasks)
		assert.Equal(t, []int64{2}, tasks.calls)

		_, err = uc.Detail(ctx, 2)
		assert.ErrorIs(t, err, contact.ErrContactNotFound)
	})

	t.Run("RemoteFailureKeepsContact", func(t *testing.T) {
		repo := newMockRepo(seedContacts()...)
		tasks := &mockUnassigner{}
		uc := newTestUseCase(repo, tasks, &mockRecorder{})
		require.NoError(t, uc.Load(ctx))
		repo.failWith = errUnavailable

		_, err := uc.Delete(ctx, model.Scope{}, 2)
		assert.ErrorIs(t, err, contact.ErrSyncFailed)
		assert.Empty(t, tasks.calls)
		_, err = uc.Detail(ctx, 2)
		assert.NoError(t, err)
	})

	t.Run("PendingChangeQueuesDelete", func(t *testing.T) {
		repo := newMockRepo(seedContacts()...)
		tasks := &mockUnassigner{}
		rec := &mockRecorder{pending: map[string][]int64{pkgRemote.CollectionContacts: {2}}}
		uc := newTestUseCase(repo, tasks, rec)
		require.NoError(t, uc.Load(ctx))

		_, err := uc.Delete(ctx, model.Scope{}, 2)
		assert.ErrorIs(t, err, contact.ErrSyncFailed)
		assert.Equal(t, []string{"list"}, repo.calls)
		assert.Empty(t, tasks.calls)
		require.Len(t, rec.inputs, 1)
		assert.Equal(t, outbox.KindDelete, rec.inputs[0].Kind)
	})

	t.Run("CascadeFailure", func(t *testing.T) {
		tasks := &mockUnassigner{touched: 1, err: errors.New("one task failed")}
		uc := newTestUseCase(newMockRepo(seedContacts()...), tasks, nil)
		require.NoError(t, uc.Load(ctx))

		res, err := uc.Delete(ctx, model.Scope{}, 1)
		assert.ErrorIs(t, err, contact.ErrCascadeIncomplete)
		assert.Equal(t, 1, res.UnassignedTasks)
		assert.Len(t, uc.List(ctx), 2)
	})

	t.Run("UnknownContact", func(t *testing.T) {
		repo := newMockRepo()
		uc := newTestUseCase(repo, &mockUnassigner{}, nil)
		_, err := uc.Delete(ctx, model.Scope{}, 42)
		assert.ErrorIs(t, err, contact.ErrContactNotFound)
		assert.Empty(t, repo.calls)
	})
}

func TestApplySynced(t *testing.T) {
	ctx := context.Background()
	tasks := &mockUnassigner{}
	uc := newTestUseCase(newMockRepo(seedContacts()...), tasks, nil)
	require.NoError(t, uc.Load(ctx))

	t.Run("Create", func(t *testing.T) {
		resp := json.RawMessage(`{"id": 77, "username": "Carl", "email": "carl@example.com"}`)
		require.NoError(t, uc.ApplySynced(ctx, outbox.Op{Kind: outbox.KindCreate}, resp))
		c, err := uc.Detail(ctx, 77)
		require.NoError(t, err)
		assert.Equal(t, model.ContactTypeContact, c.Type)
	})

	t.Run("PatchWithEmptyResponse", func(t *testing.T) {
		op := outbox.Op{Kind: outbox.KindPatch, RecordID: 3, Payload: json.RawMessage(`{"username": "Mia Me"}`)}
		require.NoError(t, uc.ApplySynced(ctx, op, nil))
		c, err := uc.Detail(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Mia Me", c.Username)
		assert.Equal(t, model.ContactTypeUser, c.Type)
	})

	t.Run("DeleteRunsCascade", func(t *testing.T) {
		require.NoError(t, uc.ApplySynced(ctx, outbox.Op{Kind: outbox.KindDelete, RecordID: 1}, nil))
		assert.Equal(t, []int64{1}, tasks.calls)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		err := uc.ApplySynced(ctx, outbox.Op{Kind: "merge"}, nil)
		assert.ErrorIs(t, err, outbox.ErrUnknownKind)
	})
}

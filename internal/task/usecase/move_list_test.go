package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"taskboard/internal/model"
	outbox "taskboard/internal/sync"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
)

// replayDoer accepts every replayed request and keeps the PATCH bodies.
type replayDoer struct {
	patches []repository.PatchTaskOptions
}

func (d *replayDoer) Do(ctx context.Context, method, collection, path string, data, out any) error {
	if raw, ok := data.(json.RawMessage); ok {
		var opt repository.PatchTaskOptions
		if err := json.Unmarshal(raw, &opt); err != nil {
			return err
		}
		d.patches = append(d.patches, opt)
	}
	return nil
}

func TestMoveBucket(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "1"}

	t.Run("Valid moves land in a known bucket", func(t *testing.T) {
		repo := newMockRepo(seedTasks()...)
		uc := newTestUseCase(repo)

		for _, b := range model.Buckets {
			moved, err := uc.MoveBucket(ctx, sc, 1, b)
			if err != nil {
				t.Fatalf("move to %s: %v", b, err)
			}
			if moved.Bucket != b || !moved.Bucket.IsValid() {
				t.Errorf("expected bucket %s, got %s", b, moved.Bucket)
			}
		}
		for _, p := range repo.patches {
			if p.Bucket == nil || p.Title != nil || p.Assigned != nil {
				t.Errorf("move must be a single-field patch: %+v", p)
			}
		}
	})

	t.Run("Invalid bucket is rejected and task unchanged", func(t *testing.T) {
		repo := newMockRepo(seedTasks()...)
		uc := newTestUseCase(repo)

		for _, b := range []model.Bucket{"", "todo", "DONE", "backlog"} {
			if _, err := uc.MoveBucket(ctx, sc, 1, b); !errors.Is(err, task.ErrInvalidBucket) {
				t.Errorf("move to %q: expected ErrInvalidBucket, got %v", b, err)
			}
		}
		got, _ := uc.Detail(ctx, 1)
		if got.Bucket != model.BucketToDo {
			t.Errorf("task changed: %+v", got)
		}
		if repo.calls != 0 {
			t.Errorf("expected no remote call")
		}
	})

	t.Run("Same bucket does not hit remote", func(t *testing.T) {
		repo := newMockRepo(seedTasks()...)
		uc := newTestUseCase(repo)
		if _, err := uc.MoveBucket(ctx, sc, 2, model.BucketInProgress); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.calls != 0 {
			t.Errorf("expected no remote call")
		}
	})

	t.Run("Move queues behind a pending move", func(t *testing.T) {
		repo := newMockRepo(seedTasks()...)
		doer := &replayDoer{}
		ob := outbox.New(&mockLogger{}, doer, outbox.Config{MaxAttempts: 1, Backoff: time.Millisecond})
		uc := newTestUseCase(repo, WithOutbox(ob))
		ob.RegisterApplier("tasks", uc)

		repo.failWith = errUnavailable
		if _, err := uc.MoveBucket(ctx, sc, 1, model.BucketDone); !errors.Is(err, task.ErrSyncFailed) {
			t.Fatalf("expected ErrSyncFailed, got %v", err)
		}
		repo.failWith = nil

		_, err := uc.MoveBucket(ctx, sc, 1, model.BucketInProgress)
		if !errors.Is(err, task.ErrSyncFailed) || !errors.Is(err, outbox.ErrQueuedBehind) {
			t.Fatalf("expected queued ErrSyncFailed, got %v", err)
		}
		if repo.calls != 1 {
			t.Errorf("second move must not reach the remote, got %d calls", repo.calls)
		}
		if n := len(ob.Pending()); n != 2 {
			t.Fatalf("expected 2 pending ops, got %d", n)
		}

		res, err := ob.Retry(ctx)
		if err != nil {
			t.Fatalf("retry: %v", err)
		}
		if res.Succeeded != 2 || res.Remaining != 0 {
			t.Errorf("unexpected retry result: %+v", res)
		}
		if len(doer.patches) != 2 || *doer.patches[0].Bucket != model.BucketDone || *doer.patches[1].Bucket != model.BucketInProgress {
			t.Errorf("replayed out of order: %+v", doer.patches)
		}

		got, _ := uc.Detail(ctx, 1)
		if got.Bucket != model.BucketInProgress {
			t.Errorf("expected in-progress after retry, got %s", got.Bucket)
		}
	})

	t.Run("Move back to stored bucket still queues while pending", func(t *testing.T) {
		repo := newMockRepo(seedTasks()...)
		rec := &mockRecorder{pending: map[int64]bool{1: true}}
		uc := newTestUseCase(repo, WithOutbox(rec))

		if _, err := uc.MoveBucket(ctx, sc, 1, model.BucketToDo); !errors.Is(err, outbox.ErrQueuedBehind) {
			t.Fatalf("expected ErrQueuedBehind, got %v", err)
		}
		if repo.calls != 0 {
			t.Errorf("expected no remote call")
		}
		if len(rec.records) != 1 || rec.records[0].Kind != outbox.KindPatch {
			t.Errorf("expected one queued patch, got %+v", rec.records)
		}
	})

	t.Run("Unknown task", func(t *testing.T) {
		uc := newTestUseCase(newMockRepo())
		if _, err := uc.MoveBucket(ctx, sc, 9, model.BucketDone); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestListByBucket(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(newMockRepo(seedTasks()...))

	todo := uc.ListByBucket(ctx, model.BucketToDo)
	if len(todo) != 2 || todo[0].ID != 1 || todo[1].ID != 3 {
		t.Errorf("unexpected to-do column: %+v", todo)
	}
	for _, b := range model.Buckets {
		for _, tk := range uc.ListByBucket(ctx, b) {
			if tk.Bucket != b {
				t.Errorf("task %d in wrong column %s", tk.ID, b)
			}
		}
	}
	if got := uc.ListByBucket(ctx, model.BucketAwaitFeedback); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil column, got %v", got)
	}

	t.Run("Snapshots are isolated", func(t *testing.T) {
		list := uc.List(ctx)
		list[0].Assigned[0] = 999
		got, _ := uc.Detail(ctx, 1)
		if got.Assigned[0] == 999 {
			t.Errorf("List leaked internal state")
		}
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(seedTasks()...)
	uc := newTestUseCase(repo)

	repo.tasks = repo.tasks[:1]
	if err := uc.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uc.List(ctx)) != 1 {
		t.Errorf("expected store replaced")
	}

	repo.failWith = errUnavailable
	if err := uc.Load(ctx); err == nil {
		t.Fatal("expected error")
	}
	if len(uc.List(ctx)) != 1 {
		t.Errorf("failed load must keep the previous list")
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo(seedTasks()...)
	uc := newTestUseCase(repo)

	uc.Reset(ctx)
	if len(uc.List(ctx)) != 0 {
		t.Errorf("expected empty store, got %d tasks", len(uc.List(ctx)))
	}
	if _, err := uc.Detail(ctx, 1); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if repo.calls != 0 {
		t.Errorf("reset must not hit the remote")
	}
}

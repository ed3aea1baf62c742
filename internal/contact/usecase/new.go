package usecase

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"taskboard/internal/contact"
	"taskboard/internal/contact/repository"
	"taskboard/internal/model"
	outbox "taskboard/internal/sync"
	pkgLog "taskboard/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	tasks    contact.TaskUnassigner
	outbox   outbox.Recorder
	counter  contact.MutationCounter
	newColor func() string

	opMu sync.Mutex
	mu   sync.RWMutex
	// collator is not safe for concurrent use; it is only used under mu.
	collator *collate.Collator
	contacts []model.Contact
}

// Option configures the contact UseCase.
type Option func(*implUseCase)

// WithOutbox queues retryable remote failures in r.
func WithOutbox(r outbox.Recorder) Option {
	return func(uc *implUseCase) {
		uc.outbox = r
	}
}

// WithMutationCounter counts successful mutations.
func WithMutationCounter(c contact.MutationCounter) Option {
	return func(uc *implUseCase) {
		uc.counter = c
	}
}

// WithColorFunc replaces the random badge color generator.
func WithColorFunc(f func() string) Option {
	return func(uc *implUseCase) {
		uc.newColor = f
	}
}

// New creates a contact UseCase. locale is a BCP 47 tag used for sorting by
// name; an unknown tag falls back to English.
func New(l pkgLog.Logger, repo repository.Repository, tasks contact.TaskUnassigner, locale string, opts ...Option) contact.UseCase {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	uc := &implUseCase{
		l:        l,
		repo:     repo,
		tasks:    tasks,
		newColor: randomColor,
		collator: collate.New(tag),
		contacts: []model.Contact{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

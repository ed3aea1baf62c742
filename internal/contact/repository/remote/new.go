package remote

import (
	"taskboard/internal/contact/repository"
	pkgLog "taskboard/pkg/log"
	pkgRemote "taskboard/pkg/remote"
)

type implRepository struct {
	client *pkgRemote.Client
	l      pkgLog.Logger
}

// New creates a contact repository backed by the remote API.
func New(client *pkgRemote.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

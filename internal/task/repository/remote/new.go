package remote

import (
	"taskboard/internal/task/repository"
	pkgLog "taskboard/pkg/log"
	pkgRemote "taskboard/pkg/remote"
)

type implRepository struct {
	client *pkgRemote.Client
	l      pkgLog.Logger
}

// New creates a task repository backed by the remote tasks collection.
func New(client *pkgRemote.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

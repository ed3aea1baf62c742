package usecase

import (
	"context"

	"taskboard/internal/contact"
	"taskboard/internal/contact/repository"
	"taskboard/internal/model"
	outbox "taskboard/internal/sync"
	pkgRemote "taskboard/pkg/remote"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input contact.CreateInput) (model.Contact, error) {
	in, err := validateCreate(input)
	if err != nil {
		return model.Contact{}, err
	}
	if in.BgColor == "" {
		in.BgColor = uc.newColor()
	}

	opt := repository.CreateContactOptions{
		Username: in.Username,
		Email:    in.Email,
		Phone:    in.Phone,
		BgColor:  in.BgColor,
		Type:     model.ContactTypeContact,
	}

	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	created, err := uc.repo.CreateContact(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.CreateContact: %v", err)
		return model.Contact{}, uc.remoteErr(ctx, "Create", pkgRemote.CollectionContacts, outbox.KindCreate, 0, opt, err)
	}
	if created.Type == "" {
		created.Type = model.ContactTypeContact
	}
	if created.BgColor == "" {
		created.BgColor = in.BgColor
	}

	uc.mu.Lock()
	uc.upsertLocked(created)
	uc.mu.Unlock()

	uc.count("create")
	uc.l.Infof(ctx, "uc.Create: user=%s created contact %d", sc.UserID, created.ID)
	return created, nil
}

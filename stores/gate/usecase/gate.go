package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/auction"
	"github.com/bidbay/goapi/domain/gate"
)

type impl struct {
	repo           gate.Repo
	eventRepo      auction.EventRepo
	adminAddresses []domain.Address
}

func New(repo gate.Repo, eventRepo auction.EventRepo, adminAddresses []domain.Address) gate.UseCase {
	admins := make([]domain.Address, len(adminAddresses))
	for i, a := range adminAddresses {
		admins[i] = a.ToLower()
	}
	return &impl{
		repo:           repo,
		eventRepo:      eventRepo,
		adminAddresses: admins,
	}
}

func (im *impl) IsAdmin(c ctx.Ctx, address domain.Address) (bool, error) {
	for _, admin := range im.adminAddresses {
		if admin.Equals(address) {
			return true, nil
		}
	}
	return false, nil
}

func (im *impl) IsPaused(c ctx.Ctx) (bool, error) {
	return im.repo.GetPaused(c)
}

func (im *impl) Pause(c ctx.Ctx, caller domain.Address) error {
	return im.setPaused(c, caller, true, auction.EventTypeMarketplacePaused)
}

func (im *impl) Unpause(c ctx.Ctx, caller domain.Address) error {
	return im.setPaused(c, caller, false, auction.EventTypeMarketplaceUnpaused)
}

func (im *impl) setPaused(c ctx.Ctx, caller domain.Address, paused bool, typ auction.EventType) error {
	if isAdmin, err := im.IsAdmin(c, caller); err != nil {
		return err
	} else if !isAdmin {
		return domain.ErrNotAdmin
	}

	if err := im.repo.SetPaused(c, paused); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"paused": paused,
		}).Error("repo.SetPaused failed")
		return err
	}

	event := &auction.Event{
		EventId: uuid.NewString(),
		Type:    typ,
		Account: caller.ToLower(),
		Time:    time.Now(),
	}
	if err := im.eventRepo.Insert(c, event); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"event": event,
		}).Error("eventRepo.Insert failed")
	}
	return nil
}

package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/auction"
	"github.com/bidbay/goapi/domain/gate"
)

type impl struct {
	repo      auction.ParamsRepo
	eventRepo auction.EventRepo
	gate      gate.Gate
}

func New(repo auction.ParamsRepo, eventRepo auction.EventRepo, g gate.Gate) auction.ParamsUseCase {
	return &impl{
		repo:      repo,
		eventRepo: eventRepo,
		gate:      g,
	}
}

func (im *impl) Params(c ctx.Ctx) (*auction.Params, error) {
	params, err := im.repo.Get(c)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("repo.Get failed")
		return nil, err
	}
	return params, nil
}

func (im *impl) SetAuctionDuration(c ctx.Ctx, caller domain.Address, d time.Duration) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	if d < auction.MinAuctionDuration || d > auction.MaxAuctionDuration {
		return domain.ErrInvalidParams
	}
	if err := im.repo.Update(c, auction.ParamsPatchable{AuctionDuration: &d}); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"duration": d,
		}).Error("repo.Update failed")
		return err
	}
	im.logEvent(c, caller, auction.EventTypeAuctionDurationSet, d.String())
	return nil
}

func (im *impl) SetOvertimeWindow(c ctx.Ctx, caller domain.Address, d time.Duration) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	if d < auction.MinOvertimeWindow || d > auction.MaxOvertimeWindow {
		return domain.ErrInvalidParams
	}
	if err := im.repo.Update(c, auction.ParamsPatchable{OvertimeWindow: &d}); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"window": d,
		}).Error("repo.Update failed")
		return err
	}
	im.logEvent(c, caller, auction.EventTypeOvertimeWindowSet, d.String())
	return nil
}

func (im *impl) SetMinPriceStepNumerator(c ctx.Ctx, caller domain.Address, numerator int64) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	if numerator < auction.MinPriceStepNumerator || numerator > auction.MaxPriceStepNumerator {
		return domain.ErrInvalidParams
	}
	if err := im.repo.Update(c, auction.ParamsPatchable{MinPriceStepNumerator: &numerator}); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"numerator": numerator,
		}).Error("repo.Update failed")
		return err
	}
	im.logEvent(c, caller, auction.EventTypeMinPriceStepSet, fmt.Sprintf("%d", numerator))
	return nil
}

func (im *impl) requireAdmin(c ctx.Ctx, caller domain.Address) error {
	if isAdmin, err := im.gate.IsAdmin(c, caller); err != nil {
		return err
	} else if !isAdmin {
		return domain.ErrNotAdmin
	}
	return nil
}

func (im *impl) logEvent(c ctx.Ctx, caller domain.Address, typ auction.EventType, value string) {
	event := &auction.Event{
		EventId:       uuid.NewString(),
		Type:          typ,
		Account:       caller.ToLower(),
		DisplayAmount: value,
		Time:          time.Now(),
	}
	if err := im.eventRepo.Insert(c, event); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"event": event,
		}).Error("eventRepo.Insert failed")
	}
}

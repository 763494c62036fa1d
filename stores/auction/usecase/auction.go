package usecase

import (
	"math/big"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/auction"
	"github.com/bidbay/goapi/domain/gate"
	"github.com/bidbay/goapi/domain/payment"
)

var timeNow = time.Now

type AuctionUseCaseCfg struct {
	AuctionRepo auction.Repo
	EventRepo   auction.EventRepo
	ParamsUC    auction.ParamsUseCase
	Gate        gate.Gate
	Funds       payment.ValueTransfer
	Custody     payment.ItemCustody

	// House is the marketplace account holding escrowed funds and items
	House domain.Address

	// PayTokenDecimals shifts base units into display amounts on events
	PayTokenDecimals int32
}

type impl struct {
	auctionRepo auction.Repo
	eventRepo   auction.EventRepo
	paramsUC    auction.ParamsUseCase
	gate        gate.Gate
	funds       payment.ValueTransfer
	custody     payment.ItemCustody
	house       domain.Address
	decimals    int32

	// reentry guard, see enter()
	entered int32
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		auctionRepo: cfg.AuctionRepo,
		eventRepo:   cfg.EventRepo,
		paramsUC:    cfg.ParamsUC,
		gate:        cfg.Gate,
		funds:       cfg.Funds,
		custody:     cfg.Custody,
		house:       cfg.House.ToLower(),
		decimals:    cfg.PayTokenDecimals,
	}
}

// enter rejects a mutating call that begins while another mutating call's
// external-interaction phase is still outstanding. The host serializes
// mutating calls, so this only trips when a collaborator re-enters us
// mid-operation.
func (im *impl) enter() error {
	if !atomic.CompareAndSwapInt32(&im.entered, 0, 1) {
		return domain.ErrReentrantCall
	}
	return nil
}

func (im *impl) leave() {
	atomic.StoreInt32(&im.entered, 0)
}

func (im *impl) checkOpen(c ctx.Ctx, caller domain.Address) error {
	if paused, err := im.gate.IsPaused(c); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("gate.IsPaused failed")
		return err
	} else if paused {
		return domain.ErrPaused
	}
	if caller.IsZero() {
		return domain.ErrZeroAddress
	}
	return nil
}

func (im *impl) CreateAuction(c ctx.Ctx, caller domain.Address, id auction.Id, reservePrice string) error {
	if err := im.enter(); err != nil {
		return err
	}
	defer im.leave()

	if err := im.checkOpen(c, caller); err != nil {
		return err
	}

	reserve, ok := new(big.Int).SetString(reservePrice, 10)
	if !ok || reserve.Sign() <= 0 {
		return domain.ErrInvalidParams
	}

	// explicit existence check; the unique index behind Insert is only
	// defense-in-depth
	if _, err := im.auctionRepo.FindOne(c, id); err == nil {
		return domain.ErrAuctionExists
	} else if err != domain.ErrNotFound {
		return err
	}

	au := &auction.Auction{
		Collection:   id.Collection,
		TokenId:      id.TokenId,
		Seller:       caller,
		ReservePrice: reserve.String(),
		CurrentBid:   reserve.String(),
		CreatedAt:    timeNow(),
	}
	if err := im.auctionRepo.Insert(c, au); err != nil {
		return err
	}

	// state is final, now pull the item in; a custody failure unwinds
	// the insert so no record exists without the item
	if err := im.custody.TransferItem(c, caller, im.house, id.Collection, id.TokenId); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("custody.TransferItem failed")
		if rbErr := im.auctionRepo.Remove(c, id); rbErr != nil {
			c.WithFields(log.Fields{
				"err": rbErr,
				"id":  id,
			}).Error("rollback auctionRepo.Remove failed")
		}
		return err
	}

	im.logEvent(c, &auction.Event{
		Type:       auction.EventTypeAuctionCreated,
		Collection: id.Collection.ToLower(),
		TokenId:    id.TokenId,
		Account:    caller.ToLower(),
		Amount:     reserve.String(),
	})
	return nil
}

func (im *impl) Bid(c ctx.Ctx, caller domain.Address, id auction.Id, amount string) (*auction.Auction, error) {
	if err := im.enter(); err != nil {
		return nil, err
	}
	defer im.leave()

	if err := im.checkOpen(c, caller); err != nil {
		return nil, err
	}

	bid, ok := new(big.Int).SetString(amount, 10)
	if !ok || bid.Sign() <= 0 {
		return nil, domain.ErrInvalidParams
	}

	au, err := im.auctionRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrAuctionNotExists
	} else if err != nil {
		return nil, err
	}

	now := timeNow()
	if au.Finished(now) {
		return nil, domain.ErrAuctionFinished
	}

	params, err := im.paramsUC.Params(c)
	if err != nil {
		return nil, err
	}

	minNext, err := au.MinNextBid(params.MinPriceStepNumerator)
	if err != nil {
		return nil, err
	}
	if bid.Cmp(minNext) < 0 {
		return nil, domain.ErrSmallBidAmount
	}

	var deadline time.Time
	if !au.Started() {
		deadline = now.Add(params.AuctionDuration)
	} else if now.After(au.Deadline.Add(-params.OvertimeWindow)) {
		// soft close: the new deadline replaces the old one, it never
		// accumulates
		deadline = now.Add(params.OvertimeWindow)
	} else {
		deadline = *au.Deadline
	}

	prev := *au
	prevBidder := au.LeadingBidder
	prevBid, ok := new(big.Int).SetString(au.CurrentBid, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}

	// the record is written before any value transfer so a re-entrant
	// observer already sees the new leader
	newBid := bid.String()
	newBidder := caller.ToLower()
	if err := im.auctionRepo.Update(c, id, auction.Patchable{
		CurrentBid:    &newBid,
		LeadingBidder: &newBidder,
		Deadline:      &deadline,
	}); err != nil {
		return nil, err
	}

	if err := im.swapEscrow(c, caller, prevBidder, prevBid, bid); err != nil {
		if rbErr := im.auctionRepo.Replace(c, &prev); rbErr != nil {
			c.WithFields(log.Fields{
				"err": rbErr,
				"id":  id,
			}).Error("rollback auctionRepo.Replace failed")
		}
		return nil, err
	}

	au.CurrentBid = newBid
	au.LeadingBidder = newBidder
	au.Deadline = &deadline

	im.logEvent(c, &auction.Event{
		Type:       auction.EventTypeBidSubmitted,
		Collection: id.Collection.ToLower(),
		TokenId:    id.TokenId,
		Account:    newBidder,
		Amount:     newBid,
		Deadline:   &deadline,
	})
	return au, nil
}

// swapEscrow refunds the outgoing bidder and pulls the incoming bidder's
// escrow. A bidder raising their own bid is only charged the difference.
// Any failure is compensated so the ledger never keeps a half-applied
// swap.
func (im *impl) swapEscrow(c ctx.Ctx, caller, prevBidder domain.Address, prevBid, bid *big.Int) error {
	if !prevBidder.IsEmpty() && prevBidder.Equals(caller) {
		delta := new(big.Int).Sub(bid, prevBid)
		return im.funds.TransferFrom(c, caller, im.house, delta)
	}

	if !prevBidder.IsEmpty() {
		if err := im.funds.Transfer(c, prevBidder, prevBid); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"bidder": prevBidder,
			}).Error("funds.Transfer refund failed")
			return err
		}
	}
	if err := im.funds.TransferFrom(c, caller, im.house, bid); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"bidder": caller,
		}).Error("funds.TransferFrom failed")
		if !prevBidder.IsEmpty() {
			if rbErr := im.funds.TransferFrom(c, prevBidder, im.house, prevBid); rbErr != nil {
				c.WithFields(log.Fields{
					"err":    rbErr,
					"bidder": prevBidder,
				}).Error("rollback funds.TransferFrom failed")
			}
		}
		return err
	}
	return nil
}

func (im *impl) CancelAuction(c ctx.Ctx, caller domain.Address, id auction.Id) error {
	if err := im.enter(); err != nil {
		return err
	}
	defer im.leave()

	if err := im.checkOpen(c, caller); err != nil {
		return err
	}

	au, err := im.findOwned(c, caller, id)
	if err != nil {
		return err
	}
	if au.Started() {
		// a bid exists, cancellation would strand the bidder's escrow
		return domain.ErrAuctionAlreadyStarted
	}

	if err := im.auctionRepo.Remove(c, id); err != nil {
		return err
	}
	if err := im.custody.TransferItem(c, im.house, au.Seller, id.Collection, id.TokenId); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("custody.TransferItem failed")
		if rbErr := im.auctionRepo.Insert(c, au); rbErr != nil {
			c.WithFields(log.Fields{
				"err": rbErr,
				"id":  id,
			}).Error("rollback auctionRepo.Insert failed")
		}
		return err
	}

	im.logEvent(c, &auction.Event{
		Type:       auction.EventTypeAuctionCanceled,
		Collection: id.Collection.ToLower(),
		TokenId:    id.TokenId,
		Account:    caller.ToLower(),
	})
	return nil
}

func (im *impl) ChangeReservePrice(c ctx.Ctx, caller domain.Address, id auction.Id, newPrice string) error {
	if err := im.enter(); err != nil {
		return err
	}
	defer im.leave()

	if err := im.checkOpen(c, caller); err != nil {
		return err
	}

	price, ok := new(big.Int).SetString(newPrice, 10)
	if !ok || price.Sign() <= 0 {
		return domain.ErrInvalidParams
	}

	au, err := im.findOwned(c, caller, id)
	if err != nil {
		return err
	}
	if au.Started() {
		return domain.ErrAuctionAlreadyStarted
	}

	priceStr := price.String()
	if err := im.auctionRepo.Update(c, id, auction.Patchable{
		ReservePrice: &priceStr,
		CurrentBid:   &priceStr,
	}); err != nil {
		return err
	}

	im.logEvent(c, &auction.Event{
		Type:       auction.EventTypeReservePriceChanged,
		Collection: id.Collection.ToLower(),
		TokenId:    id.TokenId,
		Account:    caller.ToLower(),
		Amount:     priceStr,
	})
	return nil
}

func (im *impl) ClaimWonNFT(c ctx.Ctx, caller domain.Address, id auction.Id) error {
	if err := im.enter(); err != nil {
		return err
	}
	defer im.leave()

	// settlement is permissionless, any caller may trigger it
	if err := im.checkOpen(c, caller); err != nil {
		return err
	}

	au, err := im.auctionRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return domain.ErrAuctionNotExists
	} else if err != nil {
		return err
	}

	if !au.Started() {
		return domain.ErrEmptyWinner
	}
	if !timeNow().After(*au.Deadline) {
		return domain.ErrAuctionNotFinished
	}

	winBid, ok := new(big.Int).SetString(au.CurrentBid, 10)
	if !ok {
		return domain.ErrInvalidNumberFormat
	}

	// the record is gone before any transfer, so re-entry cannot settle
	// the same auction twice
	if err := im.auctionRepo.Remove(c, id); err != nil {
		return err
	}

	if err := im.funds.Transfer(c, au.Seller, winBid); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"seller": au.Seller,
		}).Error("funds.Transfer payout failed")
		if rbErr := im.auctionRepo.Insert(c, au); rbErr != nil {
			c.WithFields(log.Fields{
				"err": rbErr,
				"id":  id,
			}).Error("rollback auctionRepo.Insert failed")
		}
		return err
	}
	if err := im.custody.TransferItem(c, im.house, au.LeadingBidder, id.Collection, id.TokenId); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"winner": au.LeadingBidder,
		}).Error("custody.TransferItem failed")
		if rbErr := im.funds.TransferFrom(c, au.Seller, im.house, winBid); rbErr != nil {
			c.WithFields(log.Fields{
				"err":    rbErr,
				"seller": au.Seller,
			}).Error("rollback funds.TransferFrom failed")
		}
		if rbErr := im.auctionRepo.Insert(c, au); rbErr != nil {
			c.WithFields(log.Fields{
				"err": rbErr,
				"id":  id,
			}).Error("rollback auctionRepo.Insert failed")
		}
		return err
	}

	im.logEvent(c, &auction.Event{
		Type:       auction.EventTypeWonItemClaimed,
		Collection: id.Collection.ToLower(),
		TokenId:    id.TokenId,
		Account:    au.LeadingBidder,
		Amount:     winBid.String(),
	})
	return nil
}

func (im *impl) GetAuctionData(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	au, err := im.auctionRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		// absent keys read as the empty record
		return &auction.Auction{}, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("auctionRepo.FindOne failed")
		return nil, err
	}
	return au, nil
}

// findOwned loads the record and checks the caller may manage it: only
// the seller or an administrator has rights before the first bid
func (im *impl) findOwned(c ctx.Ctx, caller domain.Address, id auction.Id) (*auction.Auction, error) {
	au, err := im.auctionRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrAuctionNotExists
	} else if err != nil {
		return nil, err
	}

	if !au.Seller.Equals(caller) {
		if isAdmin, err := im.gate.IsAdmin(c, caller); err != nil {
			return nil, err
		} else if !isAdmin {
			return nil, domain.ErrNoRights
		}
	}
	return au, nil
}

func (im *impl) logEvent(c ctx.Ctx, event *auction.Event) {
	event.EventId = uuid.NewString()
	event.Time = timeNow()
	if event.Amount != "" {
		if n, ok := new(big.Int).SetString(event.Amount, 10); ok {
			event.DisplayAmount = decimal.NewFromBigInt(n, -im.decimals).String()
		}
	}
	if err := im.eventRepo.Insert(c, event); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"event": event,
		}).Error("eventRepo.Insert failed")
	}
}

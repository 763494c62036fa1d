package repository

import (
	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/database/mongoclient"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/auction"
	"github.com/bidbay/goapi/service/query"
)

type auctionRepoImpl struct {
	q query.Mongo
}

// NewAuctionRepo returns the mongo-backed auction registry. Existence is
// checked by the usecase before Insert; a unique index on
// (collection, tokenId), when provisioned, makes Insert fail for an
// existing key as a second line of defense.
func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func (im *auctionRepoImpl) FindOne(ctx ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	qry, err := mongoclient.MakeBsonM(id.ToLower())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("MakeBsonM failed")
		return nil, err
	}

	var au auction.Auction
	err = im.q.FindOne(ctx, domain.TableAuctions, qry, &au)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("query.FindOne failed")
		return nil, err
	}
	return &au, nil
}

func (im *auctionRepoImpl) Insert(ctx ctx.Ctx, au *auction.Auction) error {
	au.LowerCase()
	if err := im.q.Insert(ctx, domain.TableAuctions, au); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrAuctionExists
		}
		ctx.WithFields(log.Fields{
			"err":     err,
			"auction": au,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Update(ctx ctx.Ctx, id auction.Id, patchable auction.Patchable) error {
	selector, err := mongoclient.MakeBsonM(id.ToLower())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("MakeBsonM failed")
		return err
	}
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("MakeBsonM failed")
		return err
	}
	if err := im.q.Patch(ctx, domain.TableAuctions, selector, updater); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Replace(ctx ctx.Ctx, au *auction.Auction) error {
	au.LowerCase()
	selector, err := mongoclient.MakeBsonM(au.ToId())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  au.ToId(),
		}).Error("MakeBsonM failed")
		return err
	}
	if err := im.q.Upsert(ctx, domain.TableAuctions, selector, au); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Remove(ctx ctx.Ctx, id auction.Id) error {
	selector, err := mongoclient.MakeBsonM(id.ToLower())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("MakeBsonM failed")
		return err
	}
	if err := im.q.Remove(ctx, domain.TableAuctions, selector); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}

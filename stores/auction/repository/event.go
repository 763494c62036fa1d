package repository

import (
	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/database/mongoclient"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/auction"
	"github.com/bidbay/goapi/service/query"
)

type eventRepoImpl struct {
	q query.Mongo
}

// NewEventRepo returns the append-only transition log
func NewEventRepo(q query.Mongo) auction.EventRepo {
	return &eventRepoImpl{q}
}

func (im *eventRepoImpl) Insert(ctx ctx.Ctx, event *auction.Event) error {
	if err := im.q.Insert(ctx, domain.TableAuctionEvents, event); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"event": event,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *eventRepoImpl) FindAll(ctx ctx.Ctx, id auction.Id, offset, limit int) ([]*auction.Event, error) {
	qry, err := mongoclient.MakeBsonM(id.ToLower())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("MakeBsonM failed")
		return nil, err
	}

	events := []*auction.Event{}
	if err := im.q.Search(ctx, domain.TableAuctionEvents, offset, limit, "-time", qry, &events); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return events, nil
}

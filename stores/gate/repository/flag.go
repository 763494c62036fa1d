package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/gate"
	"github.com/bidbay/goapi/service/query"
)

const pausedFlagName = "marketplace-paused"

type flagDoc struct {
	Name   string `bson:"name"`
	Paused bool   `bson:"paused"`
}

type flagRepoImpl struct {
	q query.Mongo
}

func NewFlagRepo(q query.Mongo) gate.Repo {
	return &flagRepoImpl{q}
}

func (im *flagRepoImpl) GetPaused(ctx ctx.Ctx) (bool, error) {
	var doc flagDoc
	err := im.q.FindOne(ctx, domain.TableMarketFlags, bson.M{"name": pausedFlagName}, &doc)
	if err == query.ErrNotFound {
		return false, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("query.FindOne failed")
		return false, err
	}
	return doc.Paused, nil
}

func (im *flagRepoImpl) SetPaused(ctx ctx.Ctx, paused bool) error {
	doc := flagDoc{Name: pausedFlagName, Paused: paused}
	if err := im.q.Upsert(ctx, domain.TableMarketFlags, bson.M{"name": pausedFlagName}, &doc); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"paused": paused,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

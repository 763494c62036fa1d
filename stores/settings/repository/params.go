package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/auction"
	"github.com/bidbay/goapi/service/query"
)

// the settings collection holds a single document keyed by name
const paramsDocName = "auction-params"

type paramsDoc struct {
	Name           string `bson:"name"`
	auction.Params `bson:",inline"`
}

type paramsRepoImpl struct {
	q query.Mongo
}

func NewParamsRepo(q query.Mongo) auction.ParamsRepo {
	return &paramsRepoImpl{q}
}

func (im *paramsRepoImpl) Get(ctx ctx.Ctx) (*auction.Params, error) {
	var doc paramsDoc
	err := im.q.FindOne(ctx, domain.TableSettings, bson.M{"name": paramsDocName}, &doc)
	if err == query.ErrNotFound {
		return auction.DefaultParams(), nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("query.FindOne failed")
		return nil, err
	}
	return &doc.Params, nil
}

func (im *paramsRepoImpl) Update(ctx ctx.Ctx, patchable auction.ParamsPatchable) error {
	cur, err := im.Get(ctx)
	if err != nil {
		return err
	}

	next := *cur
	if patchable.AuctionDuration != nil {
		next.AuctionDuration = *patchable.AuctionDuration
	}
	if patchable.OvertimeWindow != nil {
		next.OvertimeWindow = *patchable.OvertimeWindow
	}
	if patchable.MinPriceStepNumerator != nil {
		next.MinPriceStepNumerator = *patchable.MinPriceStepNumerator
	}

	doc := paramsDoc{Name: paramsDocName, Params: next}
	if err := im.q.Upsert(ctx, domain.TableSettings, bson.M{"name": paramsDocName}, &doc); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"doc": doc,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/payment"
	"github.com/bidbay/goapi/service/query"
)

type holdingDoc struct {
	Collection domain.Address `bson:"collection"`
	TokenId    domain.TokenId `bson:"tokenId"`
	Owner      domain.Address `bson:"owner"`
}

type custodyRepoImpl struct {
	q query.Mongo
}

// NewCustodyRepo returns the holdings book behind item custody. One
// document per item; the transfer predicate `owner == from` is what makes
// an unauthorized move fail without touching the document.
func NewCustodyRepo(q query.Mongo) payment.Custody {
	return &custodyRepoImpl{q}
}

func (im *custodyRepoImpl) HolderOf(ctx ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	var doc holdingDoc
	selector := bson.M{"collection": collection.ToLower(), "tokenId": tokenId}
	err := im.q.FindOne(ctx, domain.TableHoldings, selector, &doc)
	if err == query.ErrNotFound {
		return "", domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("query.FindOne failed")
		return "", err
	}
	return doc.Owner, nil
}

func (im *custodyRepoImpl) Register(ctx ctx.Ctx, owner, collection domain.Address, tokenId domain.TokenId) error {
	doc := holdingDoc{
		Collection: collection.ToLower(),
		TokenId:    tokenId,
		Owner:      owner.ToLower(),
	}
	selector := bson.M{"collection": collection.ToLower(), "tokenId": tokenId}
	if err := im.q.Upsert(ctx, domain.TableHoldings, selector, &doc); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"doc": doc,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *custodyRepoImpl) TransferItem(ctx ctx.Ctx, from, to, collection domain.Address, tokenId domain.TokenId) error {
	selector := bson.M{
		"collection": collection.ToLower(),
		"tokenId":    tokenId,
		"owner":      from.ToLower(),
	}
	updater := bson.M{"owner": to.ToLower()}
	if err := im.q.Patch(ctx, domain.TableHoldings, selector, updater); err != nil {
		if err == query.ErrNotFound {
			// either the item is unknown or `from` is not the holder
			return domain.ErrNoRights
		}
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

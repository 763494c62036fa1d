package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/account"
	"github.com/bidbay/goapi/service/query"
)

type accountRepoImpl struct {
	q query.Mongo
}

// NewAccountRepo returns the mongo-backed store for per-address
// signing nonces
func NewAccountRepo(q query.Mongo) account.Repo {
	return &accountRepoImpl{q}
}

func (im *accountRepoImpl) Get(ctx ctx.Ctx, address domain.Address) (*account.Account, error) {
	a := &account.Account{}
	err := im.q.FindOne(ctx, domain.TableAccounts, bson.M{"address": address.ToLowerStr()}, a)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (im *accountRepoImpl) Upsert(ctx ctx.Ctx, a *account.Account) error {
	a.Address = a.Address.ToLower()
	if err := im.q.Upsert(ctx, domain.TableAccounts, bson.M{"address": a.Address}, a); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": a.Address,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

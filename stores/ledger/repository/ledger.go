package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/log"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/payment"
	"github.com/bidbay/goapi/service/query"
)

type balanceDoc struct {
	Owner   domain.Address `bson:"owner"`
	Balance string         `bson:"balance"`
}

type ledgerRepoImpl struct {
	q     query.Mongo
	house domain.Address
}

// NewLedgerRepo returns the balance book used for escrow custody. `house`
// is the marketplace account that holds escrowed funds; Transfer always
// pays out of it. Mutating calls arrive serialized by the host, so
// read-modify-write per account is sound here.
func NewLedgerRepo(q query.Mongo, house domain.Address) payment.Ledger {
	return &ledgerRepoImpl{q, house.ToLower()}
}

func (im *ledgerRepoImpl) BalanceOf(ctx ctx.Ctx, owner domain.Address) (*big.Int, error) {
	var doc balanceDoc
	err := im.q.FindOne(ctx, domain.TableBalances, bson.M{"owner": owner.ToLower()}, &doc)
	if err == query.ErrNotFound {
		return big.NewInt(0), nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("query.FindOne failed")
		return nil, err
	}
	bal, ok := new(big.Int).SetString(doc.Balance, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return bal, nil
}

func (im *ledgerRepoImpl) Deposit(ctx ctx.Ctx, owner domain.Address, amount *big.Int) error {
	if amount.Sign() <= 0 {
		return domain.ErrInvalidParams
	}
	bal, err := im.BalanceOf(ctx, owner)
	if err != nil {
		return err
	}
	return im.setBalance(ctx, owner, new(big.Int).Add(bal, amount))
}

func (im *ledgerRepoImpl) Transfer(ctx ctx.Ctx, to domain.Address, amount *big.Int) error {
	return im.TransferFrom(ctx, im.house, to, amount)
}

func (im *ledgerRepoImpl) TransferFrom(ctx ctx.Ctx, from, to domain.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return domain.ErrInvalidParams
	}
	if amount.Sign() == 0 {
		return nil
	}

	fromBal, err := im.BalanceOf(ctx, from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}
	toBal, err := im.BalanceOf(ctx, to)
	if err != nil {
		return err
	}

	if err := im.setBalance(ctx, from, new(big.Int).Sub(fromBal, amount)); err != nil {
		return err
	}
	if err := im.setBalance(ctx, to, new(big.Int).Add(toBal, amount)); err != nil {
		// restore the debited side so a half-applied move never survives
		if rbErr := im.setBalance(ctx, from, fromBal); rbErr != nil {
			ctx.WithFields(log.Fields{
				"err":  rbErr,
				"from": from,
			}).Error("rollback setBalance failed")
		}
		return err
	}
	return nil
}

func (im *ledgerRepoImpl) setBalance(ctx ctx.Ctx, owner domain.Address, balance *big.Int) error {
	doc := balanceDoc{Owner: owner.ToLower(), Balance: balance.String()}
	if err := im.q.Upsert(ctx, domain.TableBalances, bson.M{"owner": owner.ToLower()}, &doc); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

package account

import (
	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/domain"
)

// InvalidNonce marks an account whose nonce was never generated or was
// already consumed by a signature check
const InvalidNonce = int32(-1)

// Account holds the per-address signing nonce. A nonce is single-use:
// generated before signing, invalidated by the first validation attempt.
type Account struct {
	Address domain.Address `json:"address" bson:"address"`
	Nonce   int32          `json:"-" bson:"nonce"`
}

type Repo interface {
	// Get fails with domain.ErrNotFound for unknown addresses
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
	Upsert(ctx ctx.Ctx, account *Account) error
}

// Package payment declares the external custody and value-transfer
// collaborators. Both must be atomic: a failed call leaves no partial
// transfer behind, and a failure aborts the enclosing marketplace
// operation.
package payment

import (
	"math/big"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/domain"
)

// ValueTransfer moves payment balances. All escrow moves go through it.
type ValueTransfer interface {
	// Transfer moves amount from the marketplace account to `to`
	Transfer(ctx ctx.Ctx, to domain.Address, amount *big.Int) error

	// TransferFrom moves amount between two accounts, failing with
	// domain.ErrInsufficientBalance when `from` cannot cover it
	TransferFrom(ctx ctx.Ctx, from, to domain.Address, amount *big.Int) error
}

// ItemCustody moves exclusive ownership of an item. TransferItem fails
// unless `from` currently holds the item.
type ItemCustody interface {
	TransferItem(ctx ctx.Ctx, from, to domain.Address, collection domain.Address, tokenId domain.TokenId) error
}

// Ledger is the concrete balance book behind ValueTransfer
type Ledger interface {
	ValueTransfer
	BalanceOf(ctx ctx.Ctx, owner domain.Address) (*big.Int, error)
	Deposit(ctx ctx.Ctx, owner domain.Address, amount *big.Int) error
}

// Custody is the concrete holdings book behind ItemCustody
type Custody interface {
	ItemCustody
	HolderOf(ctx ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (domain.Address, error)
	Register(ctx ctx.Ctx, owner domain.Address, collection domain.Address, tokenId domain.TokenId) error
}

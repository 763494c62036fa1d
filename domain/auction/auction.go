package auction

import (
	"math/big"
	"time"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/domain"
)

// StepDenominator is the fixed denominator for the minimum price step,
// so a numerator of 500 means the next bid must clear the last one by 5%
const StepDenominator = 10000

// Auction is the registry record for one item under auction. The record
// exists iff Seller is set; LeadingBidder is empty iff Deadline is nil iff
// no bid has been placed yet.
type Auction struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller     domain.Address `json:"seller" bson:"seller"`

	// ReservePrice is the minimum first-bid amount in base units
	ReservePrice string `json:"reservePrice" bson:"reservePrice"`

	// CurrentBid equals the reserve floor until the first bid lands and
	// never decreases across successful bids afterwards
	CurrentBid string `json:"currentBid" bson:"currentBid"`

	LeadingBidder domain.Address `json:"leadingBidder" bson:"leadingBidder"`
	Deadline      *time.Time     `json:"deadline" bson:"deadline"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (a *Auction) ToId() Id {
	return Id{
		Collection: a.Collection,
		TokenId:    a.TokenId,
	}
}

// Started reports whether at least one bid has been placed
func (a *Auction) Started() bool {
	return !a.LeadingBidder.IsEmpty()
}

// Finished reports whether the deadline has passed at the given time.
// An auction without bids never finishes.
func (a *Auction) Finished(now time.Time) bool {
	return a.Deadline != nil && !now.Before(*a.Deadline)
}

// MinNextBid returns the smallest acceptable amount for the next bid.
// Before any bid it is the reserve floor itself; afterwards it is
// currentBid * (denominator + stepNumerator) / denominator with integer
// truncation, so a bid exactly at the threshold is accepted.
func (a *Auction) MinNextBid(stepNumerator int64) (*big.Int, error) {
	cur, ok := new(big.Int).SetString(a.CurrentBid, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	if !a.Started() {
		return cur, nil
	}
	min := new(big.Int).Mul(cur, big.NewInt(StepDenominator+stepNumerator))
	return min.Quo(min, big.NewInt(StepDenominator)), nil
}

func (a *Auction) LowerCase() {
	a.Collection = a.Collection.ToLower()
	a.Seller = a.Seller.ToLower()
	a.LeadingBidder = a.LeadingBidder.ToLower()
}

// Id is the auction key, one active record per key at any time
type Id struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func (id Id) ToLower() Id {
	return Id{
		Collection: id.Collection.ToLower(),
		TokenId:    id.TokenId,
	}
}

// Patchable carries the mutable subset of a record for partial updates
type Patchable struct {
	ReservePrice  *string         `json:"reservePrice" bson:"reservePrice,omitempty"`
	CurrentBid    *string         `json:"currentBid" bson:"currentBid,omitempty"`
	LeadingBidder *domain.Address `json:"leadingBidder" bson:"leadingBidder,omitempty"`
	Deadline      *time.Time      `json:"deadline" bson:"deadline,omitempty"`
}

// Repo owns the registry mapping. Insert fails with ErrAuctionExists when
// the key is already present; FindOne fails with domain.ErrNotFound when
// it is absent.
type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Auction, error)
	Insert(ctx ctx.Ctx, auction *Auction) error
	Update(ctx ctx.Ctx, id Id, patchable Patchable) error

	// Replace writes the full record back, restoring fields a Patch
	// cannot unset
	Replace(ctx ctx.Ctx, auction *Auction) error
	Remove(ctx ctx.Ctx, id Id) error
}

// UseCase is the caller-facing surface: the lifecycle controller
// (create/cancel/reprice/claim) and the bid processor
type UseCase interface {
	CreateAuction(ctx ctx.Ctx, caller domain.Address, id Id, reservePrice string) error
	Bid(ctx ctx.Ctx, caller domain.Address, id Id, amount string) (*Auction, error)
	CancelAuction(ctx ctx.Ctx, caller domain.Address, id Id) error
	ChangeReservePrice(ctx ctx.Ctx, caller domain.Address, id Id, newPrice string) error
	ClaimWonNFT(ctx ctx.Ctx, caller domain.Address, id Id) error

	// GetAuctionData returns the zero record for never-created or
	// already-terminated keys, never an error for absence
	GetAuctionData(ctx ctx.Ctx, id Id) (*Auction, error)
}

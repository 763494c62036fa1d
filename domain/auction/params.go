package auction

import (
	"time"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/domain"
)

// admissible ranges for the tunable parameters
const (
	MinAuctionDuration = time.Minute
	MaxAuctionDuration = 365 * 24 * time.Hour

	MinOvertimeWindow = 60 * time.Second
	MaxOvertimeWindow = 365 * 24 * time.Hour

	MinPriceStepNumerator = int64(1)
	MaxPriceStepNumerator = int64(StepDenominator)
)

// defaults used until an admin tunes the marketplace
const (
	DefaultAuctionDuration       = 24 * time.Hour
	DefaultOvertimeWindow        = 10 * time.Minute
	DefaultMinPriceStepNumerator = int64(500)
)

// Params are the process-wide marketplace parameters, admin-mutated and
// read by the bid path on every bid
type Params struct {
	AuctionDuration       time.Duration `json:"auctionDuration" bson:"auctionDuration"`
	OvertimeWindow        time.Duration `json:"overtimeWindow" bson:"overtimeWindow"`
	MinPriceStepNumerator int64         `json:"minPriceStepNumerator" bson:"minPriceStepNumerator"`
}

func DefaultParams() *Params {
	return &Params{
		AuctionDuration:       DefaultAuctionDuration,
		OvertimeWindow:        DefaultOvertimeWindow,
		MinPriceStepNumerator: DefaultMinPriceStepNumerator,
	}
}

type ParamsPatchable struct {
	AuctionDuration       *time.Duration `json:"auctionDuration" bson:"auctionDuration,omitempty"`
	OvertimeWindow        *time.Duration `json:"overtimeWindow" bson:"overtimeWindow,omitempty"`
	MinPriceStepNumerator *int64         `json:"minPriceStepNumerator" bson:"minPriceStepNumerator,omitempty"`
}

// ParamsRepo persists the single settings document
type ParamsRepo interface {
	// Get returns stored params, or the defaults when none were stored yet
	Get(ctx ctx.Ctx) (*Params, error)
	Update(ctx ctx.Ctx, patchable ParamsPatchable) error
}

// ParamsUseCase validates and applies admin parameter changes
type ParamsUseCase interface {
	Params(ctx ctx.Ctx) (*Params, error)
	SetAuctionDuration(ctx ctx.Ctx, caller domain.Address, d time.Duration) error
	SetOvertimeWindow(ctx ctx.Ctx, caller domain.Address, d time.Duration) error
	SetMinPriceStepNumerator(ctx ctx.Ctx, caller domain.Address, numerator int64) error
}

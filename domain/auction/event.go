package auction

import (
	"time"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/domain"
)

type EventType string

const (
	EventTypeAuctionCreated      EventType = "auction-created"
	EventTypeAuctionCanceled     EventType = "auction-canceled"
	EventTypeReservePriceChanged EventType = "reserve-price-changed"
	EventTypeBidSubmitted        EventType = "bid-submitted"
	EventTypeWonItemClaimed      EventType = "won-item-claimed"
	EventTypeAuctionDurationSet  EventType = "auction-duration-set"
	EventTypeOvertimeWindowSet   EventType = "overtime-window-set"
	EventTypeMinPriceStepSet     EventType = "min-price-step-set"
	EventTypeMarketplacePaused   EventType = "marketplace-paused"
	EventTypeMarketplaceUnpaused EventType = "marketplace-unpaused"
)

// Event is one entry of the observable transition log, recorded once per
// successful mutating call
type Event struct {
	EventId    string         `json:"eventId" bson:"eventId"`
	Type       EventType      `json:"type" bson:"type"`
	Collection domain.Address `json:"collection" bson:"collection,omitempty"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId,omitempty"`
	Account    domain.Address `json:"account" bson:"account"`

	// Amount is the bid/reserve amount in base units, when applicable
	Amount        string `json:"amount" bson:"amount,omitempty"`
	DisplayAmount string `json:"displayAmount" bson:"displayAmount,omitempty"`

	// Deadline is the effective deadline after the call, set on bids
	Deadline *time.Time `json:"deadline" bson:"deadline,omitempty"`

	Time time.Time `json:"time" bson:"time"`
}

type EventRepo interface {
	Insert(ctx ctx.Ctx, event *Event) error
	FindAll(ctx ctx.Ctx, id Id, offset, limit int) ([]*Event, error)
}

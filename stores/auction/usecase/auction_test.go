package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/ptr"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/auction"
	mockAuction "github.com/bidbay/goapi/domain/auction/mocks"
	mockGate "github.com/bidbay/goapi/domain/gate/mocks"
	mockPayment "github.com/bidbay/goapi/domain/payment/mocks"
)

var mockCtx = ctx.Background()

const (
	house  = domain.Address("0x00000000000000000000000000000000000000fe")
	seller = domain.Address("0x000000000000000000000000000000000000000a")
	alice  = domain.Address("0x000000000000000000000000000000000000000b")
	bob    = domain.Address("0x000000000000000000000000000000000000000c")
	admin  = domain.Address("0x000000000000000000000000000000000000000d")
)

type testsuite struct {
	suite.Suite

	auctionRepo *mockAuction.Repo
	eventRepo   *mockAuction.EventRepo
	paramsUC    *mockAuction.ParamsUseCase
	gate        *mockGate.Gate
	funds       *mockPayment.ValueTransfer
	custody     *mockPayment.ItemCustody
	subject     *impl

	now time.Time
	id  auction.Id
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.auctionRepo = &mockAuction.Repo{}
	t.eventRepo = &mockAuction.EventRepo{}
	t.paramsUC = &mockAuction.ParamsUseCase{}
	t.gate = &mockGate.Gate{}
	t.funds = &mockPayment.ValueTransfer{}
	t.custody = &mockPayment.ItemCustody{}
	t.subject = New(&AuctionUseCaseCfg{
		AuctionRepo:      t.auctionRepo,
		EventRepo:        t.eventRepo,
		ParamsUC:         t.paramsUC,
		Gate:             t.gate,
		Funds:            t.funds,
		Custody:          t.custody,
		House:            house,
		PayTokenDecimals: 18,
	}).(*impl)

	t.now = time.Date(2022, 5, 17, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return t.now }

	t.id = auction.Id{Collection: "0x00000000000000000000000000000000000000aa", TokenId: "42"}
}

func (t *testsuite) TearDownTest() {
	timeNow = time.Now
}

func (t *testsuite) open() {
	t.gate.On("IsPaused", mockCtx).Return(false, nil)
}

func (t *testsuite) params() *auction.Params {
	return &auction.Params{
		AuctionDuration:       24 * time.Hour,
		OvertimeWindow:        10 * time.Minute,
		MinPriceStepNumerator: 500,
	}
}

func (t *testsuite) startedAuction(deadline time.Time) *auction.Auction {
	return &auction.Auction{
		Collection:    t.id.Collection,
		TokenId:       t.id.TokenId,
		Seller:        seller,
		ReservePrice:  "1000",
		CurrentBid:    "2000",
		LeadingBidder: alice,
		Deadline:      &deadline,
	}
}

func (t *testsuite) freshAuction() *auction.Auction {
	return &auction.Auction{
		Collection:   t.id.Collection,
		TokenId:      t.id.TokenId,
		Seller:       seller,
		ReservePrice: "1000",
		CurrentBid:   "1000",
	}
}

func (t *testsuite) TestCreateAuction() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(nil, domain.ErrNotFound)
	t.auctionRepo.On("Insert", mockCtx, mock.Anything).Return(nil)
	t.custody.On("TransferItem", mockCtx, seller, house, t.id.Collection, t.id.TokenId).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	t.NoError(t.subject.CreateAuction(mockCtx, seller, t.id, "1000"))

	inserted := t.auctionRepo.Calls[1].Arguments.Get(1).(*auction.Auction)
	t.Equal("1000", inserted.ReservePrice)
	t.Equal("1000", inserted.CurrentBid)
	t.True(inserted.LeadingBidder.IsEmpty())
	t.Nil(inserted.Deadline)
	t.Equal(t.now, inserted.CreatedAt)
	t.custody.AssertExpectations(t.T())
}

func (t *testsuite) TestCreateAuctionInvalidReserve() {
	t.open()
	for _, reserve := range []string{"", "abc", "0", "-5", "1.5"} {
		t.ErrorIs(t.subject.CreateAuction(mockCtx, seller, t.id, reserve), domain.ErrInvalidParams)
	}
	t.auctionRepo.AssertNotCalled(t.T(), "Insert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateAuctionExists() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)

	// the existing record must never be touched
	t.ErrorIs(t.subject.CreateAuction(mockCtx, seller, t.id, "1000"), domain.ErrAuctionExists)
	t.auctionRepo.AssertNotCalled(t.T(), "Insert", mock.Anything, mock.Anything)
	t.auctionRepo.AssertNotCalled(t.T(), "Remove", mock.Anything, mock.Anything)
	t.custody.AssertNotCalled(t.T(), "TransferItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateAuctionLostInsertRace() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(nil, domain.ErrNotFound)
	t.auctionRepo.On("Insert", mockCtx, mock.Anything).Return(domain.ErrAuctionExists)

	t.ErrorIs(t.subject.CreateAuction(mockCtx, seller, t.id, "1000"), domain.ErrAuctionExists)
	t.custody.AssertNotCalled(t.T(), "TransferItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateAuctionCustodyFailureUnwinds() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(nil, domain.ErrNotFound)
	t.auctionRepo.On("Insert", mockCtx, mock.Anything).Return(nil)
	custodyErr := xerrors.New("not the holder")
	t.custody.On("TransferItem", mockCtx, seller, house, t.id.Collection, t.id.TokenId).Return(custodyErr)
	t.auctionRepo.On("Remove", mockCtx, t.id).Return(nil)

	t.ErrorIs(t.subject.CreateAuction(mockCtx, seller, t.id, "1000"), custodyErr)
	t.auctionRepo.AssertCalled(t.T(), "Remove", mockCtx, t.id)
	t.eventRepo.AssertNotCalled(t.T(), "Insert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateAuctionPaused() {
	t.gate.On("IsPaused", mockCtx).Return(true, nil)
	t.ErrorIs(t.subject.CreateAuction(mockCtx, seller, t.id, "1000"), domain.ErrPaused)
}

func (t *testsuite) TestCreateAuctionZeroAddress() {
	t.open()
	t.ErrorIs(t.subject.CreateAuction(mockCtx, domain.EmptyAddress, t.id, "1000"), domain.ErrZeroAddress)
	t.ErrorIs(t.subject.CreateAuction(mockCtx, "", t.id, "1000"), domain.ErrZeroAddress)
}

func (t *testsuite) TestFirstBidStartsClock() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)

	deadline := t.now.Add(24 * time.Hour)
	t.auctionRepo.On("Update", mockCtx, t.id, auction.Patchable{
		CurrentBid:    ptr.String("1000"),
		LeadingBidder: alice.ToLowerPtr(),
		Deadline:      &deadline,
	}).Return(nil)
	t.funds.On("TransferFrom", mockCtx, alice, house, big.NewInt(1000)).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	// the reserve floor itself is an acceptable first bid
	au, err := t.subject.Bid(mockCtx, alice, t.id, "1000")
	t.NoError(err)
	t.Equal(alice, au.LeadingBidder)
	t.Equal("1000", au.CurrentBid)
	t.Equal(deadline, *au.Deadline)
	t.auctionRepo.AssertExpectations(t.T())
	t.funds.AssertExpectations(t.T())
}

func (t *testsuite) TestFirstBidBelowReserve() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)

	_, err := t.subject.Bid(mockCtx, alice, t.id, "999")
	t.ErrorIs(err, domain.ErrSmallBidAmount)
	t.funds.AssertNotCalled(t.T(), "TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestOutbidRefundsPreviousBidder() {
	t.open()
	deadline := t.now.Add(2 * time.Hour)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)

	// step 500/10000 over 2000 requires at least 2100
	t.auctionRepo.On("Update", mockCtx, t.id, auction.Patchable{
		CurrentBid:    ptr.String("2100"),
		LeadingBidder: bob.ToLowerPtr(),
		Deadline:      &deadline,
	}).Return(nil)
	t.funds.On("Transfer", mockCtx, alice, big.NewInt(2000)).Return(nil)
	t.funds.On("TransferFrom", mockCtx, bob, house, big.NewInt(2100)).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	au, err := t.subject.Bid(mockCtx, bob, t.id, "2100")
	t.NoError(err)
	t.Equal(bob, au.LeadingBidder)
	t.funds.AssertExpectations(t.T())
}

func (t *testsuite) TestBidBelowStep() {
	t.open()
	deadline := t.now.Add(2 * time.Hour)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)

	_, err := t.subject.Bid(mockCtx, bob, t.id, "2099")
	t.ErrorIs(err, domain.ErrSmallBidAmount)
}

func (t *testsuite) TestSelfRaisePullsOnlyDelta() {
	t.open()
	deadline := t.now.Add(2 * time.Hour)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)
	t.auctionRepo.On("Update", mockCtx, t.id, mock.Anything).Return(nil)
	t.funds.On("TransferFrom", mockCtx, alice, house, big.NewInt(1000)).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	_, err := t.subject.Bid(mockCtx, alice, t.id, "3000")
	t.NoError(err)
	t.funds.AssertNotCalled(t.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything)
	t.funds.AssertExpectations(t.T())
}

func (t *testsuite) TestSoftCloseExtendsDeadline() {
	t.open()
	deadline := t.now.Add(5 * time.Minute)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)

	// inside the overtime window the deadline becomes now + window,
	// regardless of what was left on the clock
	extended := t.now.Add(10 * time.Minute)
	t.auctionRepo.On("Update", mockCtx, t.id, auction.Patchable{
		CurrentBid:    ptr.String("2100"),
		LeadingBidder: bob.ToLowerPtr(),
		Deadline:      &extended,
	}).Return(nil)
	t.funds.On("Transfer", mockCtx, alice, big.NewInt(2000)).Return(nil)
	t.funds.On("TransferFrom", mockCtx, bob, house, big.NewInt(2100)).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	au, err := t.subject.Bid(mockCtx, bob, t.id, "2100")
	t.NoError(err)
	t.Equal(extended, *au.Deadline)
	t.auctionRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestBidOutsideOvertimeKeepsDeadline() {
	t.open()
	deadline := t.now.Add(3 * time.Hour)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)
	t.auctionRepo.On("Update", mockCtx, t.id, auction.Patchable{
		CurrentBid:    ptr.String("2100"),
		LeadingBidder: bob.ToLowerPtr(),
		Deadline:      &deadline,
	}).Return(nil)
	t.funds.On("Transfer", mockCtx, alice, big.NewInt(2000)).Return(nil)
	t.funds.On("TransferFrom", mockCtx, bob, house, big.NewInt(2100)).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	au, err := t.subject.Bid(mockCtx, bob, t.id, "2100")
	t.NoError(err)
	t.Equal(deadline, *au.Deadline)
	t.auctionRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestBidAtOvertimeBoundaryKeepsDeadline() {
	t.open()
	// exactly overtimeWindow left on the clock: not yet inside the
	// window, the deadline must stay put
	deadline := t.now.Add(10 * time.Minute)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)
	t.auctionRepo.On("Update", mockCtx, t.id, auction.Patchable{
		CurrentBid:    ptr.String("2100"),
		LeadingBidder: bob.ToLowerPtr(),
		Deadline:      &deadline,
	}).Return(nil)
	t.funds.On("Transfer", mockCtx, alice, big.NewInt(2000)).Return(nil)
	t.funds.On("TransferFrom", mockCtx, bob, house, big.NewInt(2100)).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	au, err := t.subject.Bid(mockCtx, bob, t.id, "2100")
	t.NoError(err)
	t.Equal(deadline, *au.Deadline)
	t.auctionRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestBidAfterDeadline() {
	t.open()
	deadline := t.now.Add(-time.Second)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)

	_, err := t.subject.Bid(mockCtx, bob, t.id, "9999")
	t.ErrorIs(err, domain.ErrAuctionFinished)
}

func (t *testsuite) TestBidAtDeadlineInstant() {
	t.open()
	deadline := t.now
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)

	_, err := t.subject.Bid(mockCtx, bob, t.id, "9999")
	t.ErrorIs(err, domain.ErrAuctionFinished)
}

func (t *testsuite) TestBidUnknownAuction() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(nil, domain.ErrNotFound)

	_, err := t.subject.Bid(mockCtx, bob, t.id, "1000")
	t.ErrorIs(err, domain.ErrAuctionNotExists)
}

func (t *testsuite) TestBidEscrowFailureRestoresRecord() {
	t.open()
	deadline := t.now.Add(2 * time.Hour)
	prev := t.startedAuction(deadline)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(prev, nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)
	t.auctionRepo.On("Update", mockCtx, t.id, mock.Anything).Return(nil)
	t.funds.On("Transfer", mockCtx, alice, big.NewInt(2000)).Return(nil)
	t.funds.On("TransferFrom", mockCtx, bob, house, big.NewInt(2100)).Return(domain.ErrInsufficientBalance)

	// the refund already went out, it has to come back, and the record
	// has to be put back as it was
	t.funds.On("TransferFrom", mockCtx, alice, house, big.NewInt(2000)).Return(nil)
	t.auctionRepo.On("Replace", mockCtx, prev).Return(nil)

	_, err := t.subject.Bid(mockCtx, bob, t.id, "2100")
	t.ErrorIs(err, domain.ErrInsufficientBalance)
	t.auctionRepo.AssertCalled(t.T(), "Replace", mockCtx, prev)
	t.funds.AssertExpectations(t.T())
	t.eventRepo.AssertNotCalled(t.T(), "Insert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCancelAuction() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)
	t.auctionRepo.On("Remove", mockCtx, t.id).Return(nil)
	t.custody.On("TransferItem", mockCtx, house, seller, t.id.Collection, t.id.TokenId).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	t.NoError(t.subject.CancelAuction(mockCtx, seller, t.id))
	t.custody.AssertExpectations(t.T())
}

func (t *testsuite) TestCancelStartedAuction() {
	t.open()
	deadline := t.now.Add(time.Hour)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)

	t.ErrorIs(t.subject.CancelAuction(mockCtx, seller, t.id), domain.ErrAuctionAlreadyStarted)
	t.auctionRepo.AssertNotCalled(t.T(), "Remove", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCancelByStranger() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)
	t.gate.On("IsAdmin", mockCtx, bob).Return(false, nil)

	t.ErrorIs(t.subject.CancelAuction(mockCtx, bob, t.id), domain.ErrNoRights)
}

func (t *testsuite) TestCancelByAdmin() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)
	t.gate.On("IsAdmin", mockCtx, admin).Return(true, nil)
	t.auctionRepo.On("Remove", mockCtx, t.id).Return(nil)
	t.custody.On("TransferItem", mockCtx, house, seller, t.id.Collection, t.id.TokenId).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	t.NoError(t.subject.CancelAuction(mockCtx, admin, t.id))
}

func (t *testsuite) TestCancelCustodyFailureRestoresRecord() {
	t.open()
	au := t.freshAuction()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(au, nil)
	t.auctionRepo.On("Remove", mockCtx, t.id).Return(nil)
	custodyErr := xerrors.New("custody unavailable")
	t.custody.On("TransferItem", mockCtx, house, seller, t.id.Collection, t.id.TokenId).Return(custodyErr)
	t.auctionRepo.On("Insert", mockCtx, au).Return(nil)

	t.ErrorIs(t.subject.CancelAuction(mockCtx, seller, t.id), custodyErr)
	t.auctionRepo.AssertCalled(t.T(), "Insert", mockCtx, au)
}

func (t *testsuite) TestChangeReservePrice() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)
	t.auctionRepo.On("Update", mockCtx, t.id, auction.Patchable{
		ReservePrice: ptr.String("500"),
		CurrentBid:   ptr.String("500"),
	}).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	// lowering is allowed before the first bid
	t.NoError(t.subject.ChangeReservePrice(mockCtx, seller, t.id, "500"))
	t.auctionRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestChangeReservePriceAfterStart() {
	t.open()
	deadline := t.now.Add(time.Hour)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)

	t.ErrorIs(t.subject.ChangeReservePrice(mockCtx, seller, t.id, "500"), domain.ErrAuctionAlreadyStarted)
}

func (t *testsuite) TestChangeReservePriceByStranger() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)
	t.gate.On("IsAdmin", mockCtx, bob).Return(false, nil)

	t.ErrorIs(t.subject.ChangeReservePrice(mockCtx, bob, t.id, "500"), domain.ErrNoRights)
}

func (t *testsuite) TestClaimWonNFT() {
	t.open()
	deadline := t.now.Add(-time.Minute)
	au := t.startedAuction(deadline)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(au, nil)
	t.auctionRepo.On("Remove", mockCtx, t.id).Return(nil)
	t.funds.On("Transfer", mockCtx, seller, big.NewInt(2000)).Return(nil)
	t.custody.On("TransferItem", mockCtx, house, alice, t.id.Collection, t.id.TokenId).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	// anyone may settle, not only the winner
	t.NoError(t.subject.ClaimWonNFT(mockCtx, bob, t.id))
	t.funds.AssertExpectations(t.T())
	t.custody.AssertExpectations(t.T())
}

func (t *testsuite) TestClaimBeforeDeadline() {
	t.open()
	deadline := t.now.Add(time.Minute)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)

	t.ErrorIs(t.subject.ClaimWonNFT(mockCtx, alice, t.id), domain.ErrAuctionNotFinished)
}

func (t *testsuite) TestClaimAtExactDeadline() {
	t.open()
	deadline := t.now
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.startedAuction(deadline), nil)

	// settlement requires the deadline to be strictly in the past
	t.ErrorIs(t.subject.ClaimWonNFT(mockCtx, alice, t.id), domain.ErrAuctionNotFinished)
}

func (t *testsuite) TestClaimWithoutBids() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)

	t.ErrorIs(t.subject.ClaimWonNFT(mockCtx, seller, t.id), domain.ErrEmptyWinner)
}

func (t *testsuite) TestClaimUnknownAuction() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(nil, domain.ErrNotFound)

	t.ErrorIs(t.subject.ClaimWonNFT(mockCtx, alice, t.id), domain.ErrAuctionNotExists)
}

func (t *testsuite) TestClaimPayoutFailureRestoresRecord() {
	t.open()
	deadline := t.now.Add(-time.Minute)
	au := t.startedAuction(deadline)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(au, nil)
	t.auctionRepo.On("Remove", mockCtx, t.id).Return(nil)
	payErr := xerrors.New("ledger down")
	t.funds.On("Transfer", mockCtx, seller, big.NewInt(2000)).Return(payErr)
	t.auctionRepo.On("Insert", mockCtx, au).Return(nil)

	t.ErrorIs(t.subject.ClaimWonNFT(mockCtx, alice, t.id), payErr)
	t.auctionRepo.AssertCalled(t.T(), "Insert", mockCtx, au)
	t.custody.AssertNotCalled(t.T(), "TransferItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestClaimItemFailureRestoresEverything() {
	t.open()
	deadline := t.now.Add(-time.Minute)
	au := t.startedAuction(deadline)
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(au, nil)
	t.auctionRepo.On("Remove", mockCtx, t.id).Return(nil)
	t.funds.On("Transfer", mockCtx, seller, big.NewInt(2000)).Return(nil)
	custodyErr := xerrors.New("custody unavailable")
	t.custody.On("TransferItem", mockCtx, house, alice, t.id.Collection, t.id.TokenId).Return(custodyErr)
	t.funds.On("TransferFrom", mockCtx, seller, house, big.NewInt(2000)).Return(nil)
	t.auctionRepo.On("Insert", mockCtx, au).Return(nil)

	t.ErrorIs(t.subject.ClaimWonNFT(mockCtx, alice, t.id), custodyErr)
	t.funds.AssertCalled(t.T(), "TransferFrom", mockCtx, seller, house, big.NewInt(2000))
	t.auctionRepo.AssertCalled(t.T(), "Insert", mockCtx, au)
}

func (t *testsuite) TestGetAuctionData() {
	au := t.freshAuction()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(au, nil)

	got, err := t.subject.GetAuctionData(mockCtx, t.id)
	t.NoError(err)
	t.Equal(au, got)
}

func (t *testsuite) TestGetAuctionDataAbsent() {
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(nil, domain.ErrNotFound)

	got, err := t.subject.GetAuctionData(mockCtx, t.id)
	t.NoError(err)
	t.Equal(&auction.Auction{}, got)
	t.True(got.LeadingBidder.IsEmpty())
	t.Nil(got.Deadline)
}

func (t *testsuite) TestReentrantCallRejected() {
	t.subject.entered = 1

	t.ErrorIs(t.subject.CreateAuction(mockCtx, seller, t.id, "1000"), domain.ErrReentrantCall)
	_, err := t.subject.Bid(mockCtx, alice, t.id, "1000")
	t.ErrorIs(err, domain.ErrReentrantCall)
	t.ErrorIs(t.subject.CancelAuction(mockCtx, seller, t.id), domain.ErrReentrantCall)
	t.ErrorIs(t.subject.ChangeReservePrice(mockCtx, seller, t.id, "1000"), domain.ErrReentrantCall)
	t.ErrorIs(t.subject.ClaimWonNFT(mockCtx, alice, t.id), domain.ErrReentrantCall)
}

func (t *testsuite) TestGuardReleasedAfterFailure() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(nil, domain.ErrNotFound)
	_, err := t.subject.Bid(mockCtx, alice, t.id, "1000")
	t.ErrorIs(err, domain.ErrAuctionNotExists)

	// the guard must not stay latched after an error return
	_, err = t.subject.Bid(mockCtx, alice, t.id, "1000")
	t.ErrorIs(err, domain.ErrAuctionNotExists)
}

func (t *testsuite) TestBidEventCarriesDeadline() {
	t.open()
	t.auctionRepo.On("FindOne", mockCtx, t.id).Return(t.freshAuction(), nil)
	t.paramsUC.On("Params", mockCtx).Return(t.params(), nil)
	t.auctionRepo.On("Update", mockCtx, t.id, mock.Anything).Return(nil)
	t.funds.On("TransferFrom", mockCtx, alice, house, big.NewInt(1000)).Return(nil)
	t.eventRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	_, err := t.subject.Bid(mockCtx, alice, t.id, "1000")
	t.NoError(err)

	event := t.eventRepo.Calls[0].Arguments.Get(1).(*auction.Event)
	t.Equal(auction.EventTypeBidSubmitted, event.Type)
	t.Equal(alice, event.Account)
	t.Equal("1000", event.Amount)
	t.NotEmpty(event.EventId)
	t.NotNil(event.Deadline)
	t.Equal(t.now.Add(24*time.Hour), *event.Deadline)
}

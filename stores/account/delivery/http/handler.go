package http

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/delivery"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/gate"
	"github.com/bidbay/goapi/domain/payment"
	"github.com/bidbay/goapi/middleware"
)

type handler struct {
	ledger  payment.Ledger
	custody payment.Custody
	gate    gate.Gate
}

// New registers the balance and holdings endpoints. Deposits and item
// registration are backoffice operations reserved to administrators.
func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, ledger payment.Ledger, custody payment.Custody, g gate.Gate) {
	h := &handler{ledger, custody, g}

	e.GET("/account/:address/balance", h.getBalance, middleware.IsValidAddress("address"))
	e.POST("/account/:address/deposit", h.deposit, middleware.IsValidAddress("address"), authMiddleware)
	e.GET("/holdings/:collection/:tokenId", h.getHolder, middleware.IsValidAddress("collection"))
	e.POST("/holdings/:collection/:tokenId", h.register, middleware.IsValidAddress("collection"), authMiddleware)
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	bal, err := h.ledger.BalanceOf(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Balance string `json:"balance"`
	}{bal.String()}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.requireAdmin(ctx, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type params struct {
		Amount string `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	amount, ok := new(big.Int).SetString(p.Amount, 10)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidParams)
	}

	if err := h.ledger.Deposit(ctx, domain.Address(c.Param("address")), amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) getHolder(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	holder, err := h.custody.HolderOf(ctx, domain.Address(c.Param("collection")), domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Owner domain.Address `json:"owner"`
	}{holder}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.requireAdmin(ctx, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type params struct {
		Owner domain.Address `json:"owner"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if p.Owner.IsZero() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrZeroAddress)
	}

	if err := h.custody.Register(ctx, p.Owner, domain.Address(c.Param("collection")), domain.TokenId(c.Param("tokenId"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) requireAdmin(ctx bCtx.Ctx, caller domain.Address) error {
	if isAdmin, err := h.gate.IsAdmin(ctx, caller); err != nil {
		return err
	} else if !isAdmin {
		return domain.ErrNotAdmin
	}
	return nil
}

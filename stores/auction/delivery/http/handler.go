package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/delivery"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/auction"
	"github.com/bidbay/goapi/middleware"
)

type handler struct {
	auction auction.UseCase
	events  auction.EventRepo
}

func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, au auction.UseCase, events auction.EventRepo) {
	h := &handler{au, events}

	g := e.Group("/auction/:collection/:tokenId", middleware.IsValidAddress("collection"))
	g.GET("", h.getAuction)
	g.GET("/events", h.getEvents)
	g.POST("", h.createAuction, authMiddleware)
	g.DELETE("", h.cancelAuction, authMiddleware)
	g.POST("/bid", h.bid, authMiddleware)
	g.PATCH("/reservePrice", h.changeReservePrice, authMiddleware)
	g.POST("/claim", h.claim, authMiddleware)
}

func (h *handler) id(c echo.Context) auction.Id {
	return auction.Id{
		Collection: domain.Address(c.Param("collection")),
		TokenId:    domain.TokenId(c.Param("tokenId")),
	}
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	res, err := h.auction.GetAuctionData(ctx, h.id(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Offset int `query:"offset"`
		Limit  int `query:"limit"`
	}
	p := &params{Limit: 20}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.events.FindAll(ctx, h.id(c), p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		ReservePrice string `json:"reservePrice"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.auction.CreateAuction(ctx, caller, h.id(c), p.ReservePrice); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) cancelAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.auction.CancelAuction(ctx, caller, h.id(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Amount string `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.auction.Bid(ctx, caller, h.id(c), p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) changeReservePrice(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		ReservePrice string `json:"reservePrice"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.auction.ChangeReservePrice(ctx, caller, h.id(c), p.ReservePrice); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) claim(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.auction.ClaimWonNFT(ctx, caller, h.id(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/delivery"
	"github.com/x-xyz/mintstake/domain/auction"
)

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auction auction.UseCase) {
	h := &handler{auction}

	g := e.Group("/auctions/:id")
	g.GET("", h.get)
	g.PUT("/snapshot", h.ingest)
	g.POST("/bids/check", h.checkBid)
	g.POST("/claims/check", h.checkClaim)
}

func auctionId(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}

// get
//
//	@Summary		Get auction
//	@Description	Status, highest bid and bid suggestions derived from the freshest snapshot
//	@Tags			auctions
//	@Produce		json
//	@Param			id	path		int		true	"auction id"	example(3)
//	@Success		200	{object}	auction.View
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/auctions/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, ok := auctionId(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	res, err := h.auction.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// ingest
//
//	@Summary		Ingest auction snapshot
//	@Description	Store abi encoded auction state read at a block, older blocks are refused
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"auction id"	example(3)
//	@Param			params	body		auction.RawSnapshot	true	"params"
//	@Success		200		{object}	auction.Snapshot
//	@Failure		400
//	@Failure		409
//	@Failure		500
//	@Router			/auctions/{id}/snapshot [put]
func (h *handler) ingest(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, ok := auctionId(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	raw := auction.RawSnapshot{}
	if err := c.Bind(&raw); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid body")
	}
	raw.Id = id
	if err := c.Validate(&raw); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.auction.Ingest(ctx, &raw)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// checkBid
//
//	@Summary		Check bid
//	@Description	Validate a typed bid against the auction, balance and allowance
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"auction id"	example(3)
//	@Param			params	body		auction.RawBidRequest	true	"params"
//	@Success		200		{object}	auction.Suggestions
//	@Failure		400
//	@Failure		404
//	@Failure		422
//	@Failure		500
//	@Router			/auctions/{id}/bids/check [post]
func (h *handler) checkBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, ok := auctionId(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	req := auction.RawBidRequest{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.auction.CheckBid(ctx, id, &req)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// checkClaim
//
//	@Summary		Check auction claim
//	@Description	Tell whether the claimant may claim the token or a refund
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"auction id"	example(3)
//	@Param			params	body		auction.ClaimRequest	true	"params"
//	@Success		200		{object}	auction.Claim
//	@Failure		400
//	@Failure		404
//	@Failure		422
//	@Failure		500
//	@Router			/auctions/{id}/claims/check [post]
func (h *handler) checkClaim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, ok := auctionId(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	req := auction.ClaimRequest{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.auction.CheckClaim(ctx, id, req.Claimant.ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/delivery"
	"github.com/x-xyz/mintstake/domain"
	"github.com/x-xyz/mintstake/domain/stake"
	"github.com/x-xyz/mintstake/middleware"
)

type handler struct {
	stake stake.UseCase
}

func New(e *echo.Echo, stake stake.UseCase) {
	h := &handler{stake}

	e.POST("/stakes/check", h.checkStake)

	g := e.Group("/stakes/:account", middleware.IsValidAddress("account"))
	g.GET("", h.get)
	g.PUT("/snapshot", h.ingest)
	g.POST("/claims/check", h.checkClaim)
}

func account(c echo.Context) domain.Address {
	return domain.Address(c.Param("account")).ToLower()
}

// get
//
//	@Summary		Get stake account
//	@Description	Positions, claimable rewards and projections of an account
//	@Tags			stakes
//	@Produce		json
//	@Param			account	path		string					true	"account address"	example(0x5324a98b506f3265c500f978f3943a1fc6a55fa4)
//	@Success		200		{object}	stake.AccountView
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/stakes/{account} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.stake.Get(ctx, account(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// ingest
//
//	@Summary		Ingest account snapshot
//	@Description	Store staking state read at a block, older blocks are refused
//	@Tags			stakes
//	@Accept			json
//	@Produce		json
//	@Param			account	path		string					true	"account address"	example(0x5324a98b506f3265c500f978f3943a1fc6a55fa4)
//	@Param			params	body		stake.RawAccountSnapshot	true	"params"
//	@Success		200		{object}	stake.AccountSnapshot
//	@Failure		400
//	@Failure		409
//	@Failure		500
//	@Router			/stakes/{account}/snapshot [put]
func (h *handler) ingest(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	raw := stake.RawAccountSnapshot{}
	if err := c.Bind(&raw); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid body")
	}
	raw.Account = account(c)
	if err := c.Validate(&raw); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.stake.Ingest(ctx, &raw)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// checkClaim
//
//	@Summary		Check reward claim
//	@Description	Validate a typed claim against the claimable reward and the daily quota
//	@Tags			stakes
//	@Accept			json
//	@Produce		json
//	@Param			account	path		string					true	"account address"	example(0x5324a98b506f3265c500f978f3943a1fc6a55fa4)
//	@Param			params	body		stake.RawClaimRequest	true	"params"
//	@Success		200		{object}	amount.Amount
//	@Failure		400
//	@Failure		404
//	@Failure		422
//	@Failure		500
//	@Router			/stakes/{account}/claims/check [post]
func (h *handler) checkClaim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := stake.RawClaimRequest{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.stake.CheckClaim(ctx, account(c), req.Index, req.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// checkStake
//
//	@Summary		Check stake
//	@Description	Validate a typed stake amount against balance and allowance
//	@Tags			stakes
//	@Accept			json
//	@Produce		json
//	@Param			params	body		stake.StakeRequest	true	"params"
//	@Success		200		{object}	amount.Amount
//	@Failure		400
//	@Failure		422
//	@Failure		500
//	@Router			/stakes/check [post]
func (h *handler) checkStake(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := stake.StakeRequest{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.stake.CheckStake(ctx, &req)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

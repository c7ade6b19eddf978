package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/mintstake/base/ctx"
	"github.com/x-xyz/mintstake/base/delivery"
	"github.com/x-xyz/mintstake/base/log"
	"github.com/x-xyz/mintstake/domain/amount"
	"github.com/x-xyz/mintstake/domain/input"
	"github.com/x-xyz/mintstake/domain/rules"
)

// handler exposes the stateless amount helpers the frontend widgets call.
type handler struct{}

func New(e *echo.Echo) {
	h := &handler{}

	e.POST("/amount/sanitize", h.sanitize)
	e.POST("/amount/convert", h.convert)
	e.POST("/mint/cost", h.mintCost)
}

// sanitize
//
//	@Summary		Sanitize amount input
//	@Description	Filter a typed amount to its canonical form, clamped to max when given
//	@Tags			amount
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.sanitize.params	true	"params"
//	@Success		200		{object}	object{canonical=string}
//	@Failure		400
//	@Failure		422
//	@Router			/amount/sanitize [post]
func (h *handler) sanitize(c echo.Context) error {
	type params struct {
		Input    string `json:"input"`
		Decimals int32  `json:"decimals" validate:"gte=0,lte=255"`
		// base units, empty for no upper bound
		Max string `json:"max" validate:"omitempty,uint256"`
	}
	type result struct {
		Canonical string `json:"canonical"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	var max *amount.Amount
	if p.Max != "" {
		m, err := amount.FromBaseUnitString(p.Max, p.Decimals)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		max = &m
	}

	canonical, err := input.Sanitize(p.Input, p.Decimals, max)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, result{canonical})
}

// convert
//
//	@Summary		Convert amount
//	@Description	Display string, float and ether scale unit of a base unit amount
//	@Tags			amount
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.convert.params	true	"params"
//	@Success		200		{object}	http.convert.result
//	@Failure		400
//	@Router			/amount/convert [post]
func (h *handler) convert(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Magnitude string `json:"magnitude" validate:"required,uint256"`
		Decimals  int32  `json:"decimals" validate:"gte=0,lte=255"`
	}
	type scaled struct {
		Amount string      `json:"amount"`
		Unit   amount.Unit `json:"unit"`
	}
	type result struct {
		Display string `json:"display"`
		// null when the value is too large for an exact float
		Human  *float64 `json:"human"`
		Scaled scaled   `json:"scaled"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	a, err := amount.FromBaseUnitString(p.Magnitude, p.Decimals)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res := result{Display: amount.ToDisplayString(a)}
	if human, err := amount.ToHumanNumber(a); err == nil {
		res.Human = &human
	} else {
		ctx.WithFields(log.Fields{"magnitude": p.Magnitude, "err": err}).Debug("amount.ToHumanNumber failed")
	}
	res.Scaled.Amount, res.Scaled.Unit = amount.ToEtherScaleUnit(a)
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// mintCost
//
//	@Summary		Get mint cost
//	@Description	Total price of minting count tokens, checked against balance when given
//	@Tags			mint
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.mintCost.params	true	"params"
//	@Success		200		{object}	http.mintCost.result
//	@Failure		400
//	@Failure		422
//	@Router			/mint/cost [post]
func (h *handler) mintCost(c echo.Context) error {
	type params struct {
		UnitPrice string `json:"unitPrice" validate:"required,uint256"`
		Count     uint64 `json:"count"`
		Decimals  int32  `json:"decimals" validate:"gte=0,lte=255"`
		// base units, empty to skip the balance check
		Balance string `json:"balance" validate:"omitempty,uint256"`
	}
	type result struct {
		Cost    amount.Amount `json:"cost"`
		Display string        `json:"display"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	price, err := amount.FromBaseUnitString(p.UnitPrice, p.Decimals)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	balance := rules.MintCost(price, p.Count)
	if p.Balance != "" {
		if balance, err = amount.FromBaseUnitString(p.Balance, p.Decimals); err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
	}

	cost, err := rules.CheckMint(price, p.Count, balance)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, result{cost, amount.ToDisplayString(cost)})
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/base/delivery"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/bank"
	"github.com/x-xyz/lendapi/domain/lending"
	authMiddleware "github.com/x-xyz/lendapi/stores/auth/delivery/http/middleware"
)

type bankHandler struct {
	bank    bank.Service
	lending lending.Usecase
}

func New(e *echo.Echo, svc bank.Service, uc lending.Usecase, am *authMiddleware.AuthMiddleware) {
	handler := &bankHandler{
		bank:    svc,
		lending: uc,
	}

	g := e.Group("/bank")
	g.POST("/deposit", handler.deposit, am.Auth())
	g.GET("/balances/:address/:denom", handler.balance)
}

// deposit is the admin faucet used to seed spendable balances
func (h *bankHandler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sender := c.Get("address").(domain.Address)

	type params struct {
		To     domain.Address `json:"to" validate:"required"`
		Amount uint64         `json:"amount" validate:"required,gt=0"`
		Denom  string         `json:"denom" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	cfg, err := h.lending.GetConfig(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if !cfg.Admin.Equals(sender) {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrUnauthorized)
	}

	if err := h.bank.Deposit(ctx, p.To, p.Amount, p.Denom); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *bankHandler) balance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `param:"address" validate:"required"`
		Denom   string         `param:"denom" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	amount, err := h.bank.Balance(ctx, p.Address, p.Denom)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := bank.Balance{Address: p.Address.ToLower(), Denom: p.Denom, Amount: amount}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

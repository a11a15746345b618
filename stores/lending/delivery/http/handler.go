package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/base/delivery"
	"github.com/x-xyz/lendapi/base/metrics"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/lending"
	authMiddleware "github.com/x-xyz/lendapi/stores/auth/delivery/http/middleware"
)

type lendingHandler struct {
	lending lending.Usecase
	met     metrics.Service
}

func New(e *echo.Echo, uc lending.Usecase, am *authMiddleware.AuthMiddleware) {
	handler := &lendingHandler{
		lending: uc,
		met:     metrics.New("lending"),
	}

	g := e.Group("/lending")

	g.POST("/offers", handler.lend, am.Auth())
	g.GET("/offers", handler.listOffers)
	g.GET("/offers/:offerId", handler.getOffer)
	g.DELETE("/offers/:offerId", handler.cancelOffer, am.Auth())
	g.POST("/offers/:offerId/borrow", handler.borrow, am.Auth())
	g.POST("/offers/:offerId/repay", handler.repay, am.Auth())

	g.POST("/collections", handler.registerCollection, am.Auth())
	g.GET("/collections/:collectionId", handler.getCollection)
	g.PUT("/collections/:collectionId/floor-price", handler.updateFloorPrice, am.Auth())

	g.GET("/admin", handler.getConfig)
	g.PUT("/admin", handler.updateAdmin, am.Auth())
	g.PUT("/interest", handler.updateInterest, am.Auth())
}

func (h *lendingHandler) lend(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sender := c.Get("address").(domain.Address)

	p := &lending.LendPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	h.met.BumpSum("lend.count", 1)
	if offer, err := h.lending.Lend(ctx, sender, *p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, offer)
	}
}

func (h *lendingHandler) cancelOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sender := c.Get("address").(domain.Address)

	type params struct {
		OfferId domain.OfferId `param:"offerId" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	h.met.BumpSum("cancel.count", 1)
	if offer, err := h.lending.CancelOffer(ctx, sender, p.OfferId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, offer)
	}
}

func (h *lendingHandler) borrow(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sender := c.Get("address").(domain.Address)

	type params struct {
		OfferId domain.OfferId `param:"offerId" validate:"required"`
		lending.BorrowPayload
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	h.met.BumpSum("borrow.count", 1)
	if offer, err := h.lending.Borrow(ctx, sender, p.OfferId, p.BorrowPayload); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, offer)
	}
}

func (h *lendingHandler) repay(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sender := c.Get("address").(domain.Address)

	type params struct {
		OfferId domain.OfferId `param:"offerId" validate:"required"`
		lending.RepayPayload
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	h.met.BumpSum("repay.count", 1)
	if offer, err := h.lending.Repay(ctx, sender, p.OfferId, p.RepayPayload); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, offer)
	}
}

func (h *lendingHandler) registerCollection(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sender := c.Get("address").(domain.Address)

	p := &lending.NFTCollection{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if collection, err := h.lending.RegisterCollection(ctx, sender, *p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, collection)
	}
}

func (h *lendingHandler) updateFloorPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sender := c.Get("address").(domain.Address)

	type params struct {
		CollectionId domain.CollectionId `param:"collectionId" validate:"required"`
		lending.UpdateFloorPricePayload
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if collection, err := h.lending.UpdateFloorPrice(ctx, sender, p.CollectionId, p.NewFloorPrice); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, collection)
	}
}

func (h *lendingHandler) updateAdmin(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sender := c.Get("address").(domain.Address)

	p := &lending.UpdateAdminPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if cfg, err := h.lending.UpdateAdmin(ctx, sender, p.NewAdmin); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, cfg)
	}
}

func (h *lendingHandler) updateInterest(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	sender := c.Get("address").(domain.Address)

	p := &lending.UpdateInterestPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if cfg, err := h.lending.UpdateInterest(ctx, sender, p.Interest); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, cfg)
	}
}

func (h *lendingHandler) getOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		OfferId domain.OfferId `param:"offerId" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if offer, err := h.lending.GetOffer(ctx, p.OfferId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, offer)
	}
}

func (h *lendingHandler) listOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		StartAfter *domain.OfferId     `query:"startAfter"`
		Limit      *int32              `query:"limit"`
		Owner      *domain.Address     `query:"owner"`
		Borrower   *domain.Address     `query:"borrower"`
		State      *lending.OfferState `query:"state"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []lending.FindOffersOptions{}
	if p.StartAfter != nil {
		opts = append(opts, lending.WithStartAfter(*p.StartAfter))
	}
	if p.Limit != nil {
		opts = append(opts, lending.WithLimit(*p.Limit))
	}
	if p.Owner != nil {
		opts = append(opts, lending.WithOwner(*p.Owner))
	}
	if p.Borrower != nil {
		opts = append(opts, lending.WithBorrower(*p.Borrower))
	}
	if p.State != nil {
		opts = append(opts, lending.WithState(*p.State))
	}

	if res, err := h.lending.ListOffers(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *lendingHandler) getCollection(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		CollectionId domain.CollectionId `param:"collectionId" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if collection, err := h.lending.GetCollection(ctx, p.CollectionId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, collection)
	}
}

func (h *lendingHandler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if cfg, err := h.lending.GetConfig(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, cfg)
	}
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/masterplan/backend/pkg/httpcontext"
	goalUC "github.com/masterplan/backend/usecase/goal"
	suggestUC "github.com/masterplan/backend/usecase/suggest"
)

// DashboardHandler groups the read-mostly surfaces: the summary, the
// suggestion catalog and the daily quote.
type DashboardHandler struct {
	baseHandler
	goals   *goalUC.UseCase
	suggest *suggestUC.UseCase
}

func NewDashboardHandler(goals *goalUC.UseCase, suggest *suggestUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		baseHandler: newBaseHandler(adapter, logger),
		goals:       goals,
		suggest:     suggest,
	}
}

// @Summary Dashboard summary
// @Tags dashboard
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) Summary(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.goals.Summary(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, summary)
}

// @Summary List goal suggestions
// @Tags dashboard
// @Router /api/v1/suggestions [get]
func (h *DashboardHandler) ListSuggestions(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.suggest.List(stdCtx))
}

// @Summary Adopt a suggestion as a new goal
// @Tags dashboard
// @Router /api/v1/suggestions/{index}/adopt [post]
func (h *DashboardHandler) AdoptSuggestion(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	raw, ok := h.pathValue(ctx, "index")
	if !ok {
		return
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		h.respondInvalid(ctx, "invalid suggestion index")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.suggest.Adopt(stdCtx, userID, index)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Daily motivational quote
// @Tags dashboard
// @Router /api/v1/quotes/daily [get]
func (h *DashboardHandler) DailyQuote(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.suggest.DailyQuote())
}

package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/masterplan/backend/pkg/httpcontext"
	shareUC "github.com/masterplan/backend/usecase/share"
)

type ShareHandler struct {
	baseHandler
	uc *shareUC.UseCase
}

func NewShareHandler(uc *shareUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ShareHandler {
	return &ShareHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Issue a share link for a goal
// @Tags share
// @Router /api/v1/goals/{id}/share [post]
func (h *ShareHandler) ShareGoal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	goalID, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.ShareGoal(stdCtx, userID, goalID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, result)
}

// ViewSharedGoal is public: no session is required to resolve a token.
// @Summary Resolve a share token to its snapshot
// @Tags share
// @Router /shared/{token} [get]
func (h *ShareHandler) ViewSharedGoal(ctx *fasthttp.RequestCtx) {
	token, ok := h.pathValue(ctx, "token")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goal, err := h.uc.FetchSharedGoal(stdCtx, token)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

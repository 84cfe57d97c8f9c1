package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/masterplan/backend/api/transport"
	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/pkg/httpcontext"
	goalUC "github.com/masterplan/backend/usecase/goal"
)

type GoalHandler struct {
	baseHandler
	uc *goalUC.UseCase
}

func NewGoalHandler(uc *goalUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List goals
// @Tags goals
// @Router /api/v1/goals [get]
func (h *GoalHandler) ListGoals(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goals, err := h.uc.ListGoals(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goals)
}

// @Summary Create goal
// @Tags goals
// @Router /api/v1/goals [post]
func (h *GoalHandler) CreateGoal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.GoalRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	status, ok := parseStatus(req.Status)
	if !ok {
		h.respondInvalid(ctx, "invalid status")
		return
	}
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		h.respondInvalid(ctx, "invalid deadline")
		return
	}

	input := goalUC.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Deadline:    deadline,
	}
	for _, sg := range req.SubGoals {
		sgStatus, ok := parseStatus(sg.Status)
		if !ok {
			h.respondInvalid(ctx, "invalid sub-goal status")
			return
		}
		sgDeadline, err := parseDeadline(sg.Deadline)
		if err != nil {
			h.respondInvalid(ctx, "invalid sub-goal deadline")
			return
		}
		input.SubGoals = append(input.SubGoals, goalUC.SubGoalInput{
			Title:    sg.Title,
			Status:   sgStatus,
			Deadline: sgDeadline,
		})
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddGoal(stdCtx, userID, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Get goal
// @Tags goals
// @Router /api/v1/goals/{id} [get]
func (h *GoalHandler) GetGoal(ctx *fasthttp.RequestCtx) {
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

	goal, err := h.uc.GetGoal(stdCtx, userID, goalID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

// @Summary Update goal
// @Tags goals
// @Router /api/v1/goals/{id} [put]
func (h *GoalHandler) UpdateGoal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	goalID, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	var req transport.GoalUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	update := goalUC.GoalUpdate{
		Title:          req.Title,
		Description:    req.Description,
		RemoveDeadline: req.RemoveDeadline,
	}
	if req.Status != nil {
		status, ok := parseStatus(*req.Status)
		if !ok {
			h.respondInvalid(ctx, "invalid status")
			return
		}
		update.Status = &status
	}
	if req.Deadline != nil {
		deadline, err := parseDeadline(*req.Deadline)
		if err != nil {
			h.respondInvalid(ctx, "invalid deadline")
			return
		}
		update.Deadline = deadline
	}
	if req.SubGoals != nil {
		update.SubGoals = make([]goalUC.SubGoalInput, 0, len(req.SubGoals))
		for _, sg := range req.SubGoals {
			sgStatus, ok := parseStatus(sg.Status)
			if !ok {
				h.respondInvalid(ctx, "invalid sub-goal status")
				return
			}
			sgDeadline, err := parseDeadline(sg.Deadline)
			if err != nil {
				h.respondInvalid(ctx, "invalid sub-goal deadline")
				return
			}
			update.SubGoals = append(update.SubGoals, goalUC.SubGoalInput{
				Title:    sg.Title,
				Status:   sgStatus,
				Deadline: sgDeadline,
			})
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateGoal(stdCtx, userID, goalID, update)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete goal
// @Tags goals
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(ctx *fasthttp.RequestCtx) {
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

	if err := h.uc.DeleteGoal(stdCtx, userID, goalID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Add sub-goal
// @Tags goals
// @Router /api/v1/goals/{id}/subgoals [post]
func (h *GoalHandler) AddSubGoal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	goalID, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	var req transport.SubGoalRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}
	status, ok := parseStatus(req.Status)
	if !ok {
		h.respondInvalid(ctx, "invalid status")
		return
	}
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		h.respondInvalid(ctx, "invalid deadline")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goal, err := h.uc.AddSubGoal(stdCtx, userID, goalID, goalUC.SubGoalInput{
		Title:    req.Title,
		Status:   status,
		Deadline: deadline,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, goal)
}

// @Summary Update sub-goal
// @Tags goals
// @Router /api/v1/goals/{id}/subgoals/{subId} [put]
func (h *GoalHandler) UpdateSubGoal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	goalID, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}
	subGoalID, ok := h.pathValue(ctx, "subId")
	if !ok {
		return
	}

	var req transport.SubGoalUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	update := goalUC.SubGoalUpdate{
		Title:          req.Title,
		RemoveDeadline: req.RemoveDeadline,
	}
	if req.Status != nil {
		status, ok := parseStatus(*req.Status)
		if !ok {
			h.respondInvalid(ctx, "invalid status")
			return
		}
		update.Status = &status
	}
	if req.Deadline != nil {
		deadline, err := parseDeadline(*req.Deadline)
		if err != nil {
			h.respondInvalid(ctx, "invalid deadline")
			return
		}
		update.Deadline = deadline
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goal, err := h.uc.UpdateSubGoal(stdCtx, userID, goalID, subGoalID, update)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

// @Summary Delete sub-goal
// @Tags goals
// @Router /api/v1/goals/{id}/subgoals/{subId} [delete]
func (h *GoalHandler) DeleteSubGoal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	goalID, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}
	subGoalID, ok := h.pathValue(ctx, "subId")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goal, err := h.uc.DeleteSubGoal(stdCtx, userID, goalID, subGoalID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

func (h baseHandler) pathValue(ctx *fasthttp.RequestCtx, name string) (string, bool) {
	value, _ := ctx.UserValue(name).(string)
	if value == "" {
		h.respondInvalid(ctx, "missing "+name)
		return "", false
	}
	return value, true
}

func parseStatus(value string) (domain.GoalStatus, bool) {
	if value == "" {
		return "", true
	}
	status := domain.GoalStatus(value)
	return status, status.Valid()
}

// parseDeadline accepts an empty string as "no deadline"; anything else must
// be RFC 3339.
func parseDeadline(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

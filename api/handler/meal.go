package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifebot/backend/api/transport"
	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/pkg/httpcontext"
	mealUC "github.com/lifebot/backend/usecase/meal"
)

type MealHandler struct {
	baseHandler
	uc *mealUC.UseCase
}

func NewMealHandler(uc *mealUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *MealHandler {
	return &MealHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List logged meals
// @Tags meals
// @Router /api/v1/meals [get]
func (h *MealHandler) ListMeals(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	meals, err := h.uc.ListMeals(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, meals)
}

// @Summary Log a meal
// @Tags meals
// @Router /api/v1/meals [post]
func (h *MealHandler) LogMeal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.MealCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.LogMeal(stdCtx, userID, domain.MealType(req.MealType), req.MealName, req.Mood)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Per-day meal counts for the overview chart
// @Tags meals
// @Router /api/v1/meals/overview [get]
func (h *MealHandler) Overview(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	counts, err := h.uc.Overview(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, counts)
}

// @Summary Healthy-meal suggestions for the current time of day
// @Tags meals
// @Router /api/v1/meals/suggestions [get]
func (h *MealHandler) Suggestions(ctx *fasthttp.RequestCtx) {
	slot, ideas := h.uc.Suggestions()
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"meal_type":   slot,
		"suggestions": ideas,
	})
}

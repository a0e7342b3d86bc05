package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifebot/backend/api/transport"
	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/pkg/httpcontext"
	journalUC "github.com/lifebot/backend/usecase/journal"
)

type JournalHandler struct {
	baseHandler
	uc *journalUC.UseCase
}

func NewJournalHandler(uc *journalUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List journal entries
// @Tags journal
// @Router /api/v1/journal [get]
func (h *JournalHandler) ListEntries(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entries, err := h.uc.ListEntries(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, entries)
}

// @Summary Save a journal entry
// @Tags journal
// @Router /api/v1/journal [post]
func (h *JournalHandler) CreateEntry(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.JournalCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddEntry(stdCtx, userID, req.Entry, req.Mood)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

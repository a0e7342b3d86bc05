package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/lifebot/backend/api/transport"
	"github.com/lifebot/backend/domain"
	"github.com/lifebot/backend/pkg/httpcontext"
	authUC "github.com/lifebot/backend/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc        *authUC.UseCase
	jwtSecret string
	jwtIssuer string
}

func NewAuthHandler(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, jwtSecret, jwtIssuer string) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		jwtSecret:   jwtSecret,
		jwtIssuer:   jwtIssuer,
	}
}

// @Summary Resolve a display name into a user and open a session
// @Tags auth
// @Router /api/v1/auth/resolve [post]
func (h *AuthHandler) Resolve(ctx *fasthttp.RequestCtx) {
	var req transport.ResolveRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, session, err := h.uc.Login(stdCtx, req.Username)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	token, err := h.signToken(user, session)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// @Summary Close the current session
// @Tags auth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	sessionID := string(ctx.Request.Header.Peek("X-Session-ID"))
	if sessionID == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing session id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Logout(stdCtx, sessionID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *AuthHandler) signToken(user *domain.User, session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"session_id": session.ID,
		"iss":        h.jwtIssuer,
		"exp":        session.ExpiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

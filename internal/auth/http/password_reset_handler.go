package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	"github.com/allisson/crewhub/internal/auth/http/dto"
	authUseCase "github.com/allisson/crewhub/internal/auth/usecase"
	"github.com/allisson/crewhub/internal/httputil"
	customValidation "github.com/allisson/crewhub/internal/validation"
)

// PasswordResetHandler handles HTTP requests for the reset token lifecycle.
type PasswordResetHandler struct {
	resetUseCase authUseCase.PasswordResetUseCase
	logger       *slog.Logger
}

// NewPasswordResetHandler creates a new password reset handler with required dependencies.
func NewPasswordResetHandler(
	resetUseCase authUseCase.PasswordResetUseCase,
	logger *slog.Logger,
) *PasswordResetHandler {
	return &PasswordResetHandler{
		resetUseCase: resetUseCase,
		logger:       logger,
	}
}

// RequestHandler asks for a reset token to be issued and delivered.
// POST /v1/auth/reset/request - No authentication required.
//
// Always returns 202 Accepted with the same body, whether or not the
// principal exists or is active, so the endpoint cannot be used to probe
// accounts. Failures are logged server side only.
func (h *PasswordResetHandler) RequestHandler(c *gin.Context) {
	var req dto.RequestResetRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	principalID, principalType, err := parsePrincipal(req.PrincipalID, req.PrincipalType)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	input := &authDomain.RequestResetInput{
		PrincipalID:   principalID,
		PrincipalType: principalType,
	}

	if _, err := h.resetUseCase.Request(c.Request.Context(), input); err != nil {
		h.logger.InfoContext(c.Request.Context(), "reset request not fulfilled",
			slog.String("principal_id", principalID.String()),
			slog.Any("error", err),
		)
	}

	c.JSON(http.StatusAccepted, dto.RequestResetResponse{Status: "accepted"})
}

// ValidateHandler checks a reset token without consuming it, so a client can
// gate its new-credential form before asking the user to type anything.
// POST /v1/auth/reset/validate - No authentication required.
func (h *PasswordResetHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateResetRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if _, err := h.resetUseCase.Validate(c.Request.Context(), req.Token); err != nil {
		h.handleConsumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ValidateResetResponse{Status: "valid"})
}

// ConsumeHandler redeems a reset token for a new credential.
// POST /v1/auth/reset/consume - No authentication required; the token is the proof.
// Returns 200 OK on success. Token failures map to distinct error codes so a
// client can tell an expired token from a spent one.
func (h *PasswordResetHandler) ConsumeHandler(c *gin.Context) {
	var req dto.ConsumeResetRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &authDomain.ConsumeResetInput{
		PlainToken: req.Token,
		NewSecret:  req.NewSecret,
	}

	if err := h.resetUseCase.Consume(c.Request.Context(), input); err != nil {
		h.handleConsumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConsumeResetResponse{Status: "credential_updated"})
}

func (h *PasswordResetHandler) handleConsumeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authDomain.ErrResetTokenNotFound):
		c.JSON(http.StatusNotFound, httputil.ErrorResponse{
			Error:   "token_not_found",
			Message: "Reset token not found",
		})
	case errors.Is(err, authDomain.ErrResetTokenExpired):
		c.JSON(http.StatusGone, httputil.ErrorResponse{
			Error:   "token_expired",
			Message: "Reset token has expired",
		})
	case errors.Is(err, authDomain.ErrResetTokenUsed):
		c.JSON(http.StatusConflict, httputil.ErrorResponse{
			Error:   "token_used",
			Message: "Reset token was already used",
		})
	default:
		httputil.HandleErrorGin(c, err, h.logger)
	}
}

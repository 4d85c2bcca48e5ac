// Package http provides HTTP handlers for credential, reset and invitation operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	"github.com/allisson/crewhub/internal/auth/http/dto"
	authUseCase "github.com/allisson/crewhub/internal/auth/usecase"
	"github.com/allisson/crewhub/internal/httputil"
	customValidation "github.com/allisson/crewhub/internal/validation"
)

// AuthHandler handles HTTP requests for credential verification and rotation.
type AuthHandler struct {
	credentialUseCase authUseCase.CredentialUseCase
	logger            *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	credentialUseCase authUseCase.CredentialUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		credentialUseCase: credentialUseCase,
		logger:            logger,
	}
}

// parsePrincipal converts the request principal fields to domain values.
func parsePrincipal(principalID, principalType string) (uuid.UUID, authDomain.PrincipalType, error) {
	id, err := uuid.Parse(principalID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid principal_id format: must be a valid UUID")
	}
	parsedType, err := authDomain.ParsePrincipalType(principalType)
	if err != nil {
		return uuid.Nil, "", err
	}
	return id, parsedType, nil
}

// VerifyHandler verifies a principal's credential.
// POST /v1/auth/verify - No authentication required (this is the authentication endpoint).
// Returns 200 OK on success; every verification failure is a generic 401.
func (h *AuthHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyCredentialRequest

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

	input := &authDomain.VerifyCredentialInput{
		PrincipalID:   principalID,
		PrincipalType: principalType,
		Secret:        req.Secret,
	}

	output, err := h.credentialUseCase.Verify(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyCredentialResponse{
		Authenticated:  true,
		NeedsMigration: output.NeedsMigration,
	})
}

// ChangeCredentialHandler rotates a principal's credential.
// POST /v1/auth/credential - Verifies the current secret before storing the new one.
// Returns 204 No Content on success.
func (h *AuthHandler) ChangeCredentialHandler(c *gin.Context) {
	var req dto.ChangeCredentialRequest

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

	input := &authDomain.ChangeCredentialInput{
		PrincipalID:   principalID,
		PrincipalType: principalType,
		CurrentSecret: req.CurrentSecret,
		NewSecret:     req.NewSecret,
	}

	if err := h.credentialUseCase.ChangeCredential(c.Request.Context(), input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

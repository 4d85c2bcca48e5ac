package http

import (
	"errors"
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

// InvitationHandler handles HTTP requests for the invitation lifecycle.
type InvitationHandler struct {
	invitationUseCase authUseCase.InvitationUseCase
	logger            *slog.Logger
}

// NewInvitationHandler creates a new invitation handler with required dependencies.
func NewInvitationHandler(
	invitationUseCase authUseCase.InvitationUseCase,
	logger *slog.Logger,
) *InvitationHandler {
	return &InvitationHandler{
		invitationUseCase: invitationUseCase,
		logger:            logger,
	}
}

// IssueHandler signs an invitation token for an email to join a company.
// POST /v1/invitations
// Returns 201 Created with the token and its expiry.
func (h *InvitationHandler) IssueHandler(c *gin.Context) {
	var req dto.IssueInvitationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid company_id format: must be a valid UUID"),
			h.logger)
		return
	}

	input := &authDomain.IssueInvitationInput{
		CompanyID: companyID,
		Email:     req.Email,
	}

	output, err := h.invitationUseCase.Issue(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.InvitationResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// ResolveHandler verifies an invitation token and returns its claims.
// POST /v1/invitations/resolve
// Returns 200 OK with the claims; any token failure is a single 401 code.
func (h *InvitationHandler) ResolveHandler(c *gin.Context) {
	var req dto.ResolveInvitationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	claims, err := h.invitationUseCase.Resolve(c.Request.Context(), req.Token)
	if err != nil {
		h.handleInviteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapClaimsToResponse(claims))
}

// AcceptHandler redeems an invitation token and provisions the employee.
// POST /v1/invitations/accept
// Returns 201 Created with the new employee's identifiers.
func (h *InvitationHandler) AcceptHandler(c *gin.Context) {
	var req dto.AcceptInvitationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &authDomain.AcceptInvitationInput{
		Token:     req.Token,
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Position:  req.Position,
	}

	output, err := h.invitationUseCase.Accept(c.Request.Context(), input)
	if err != nil {
		h.handleInviteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AcceptInvitationResponse{
		EmployeeID: output.EmployeeID.String(),
		CompanyID:  output.CompanyID.String(),
		Email:      output.Email,
	})
}

func (h *InvitationHandler) handleInviteError(c *gin.Context, err error) {
	if errors.Is(err, authDomain.ErrInvalidOrExpiredInvite) {
		c.JSON(http.StatusUnauthorized, httputil.ErrorResponse{
			Error:   "invalid_or_expired_token",
			Message: "Invitation token is invalid or expired",
		})
		return
	}
	httputil.HandleErrorGin(c, err, h.logger)
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/usecase/profile"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// ProfileController handles financial profile endpoints.
type ProfileController struct {
	getUseCase    *profile.GetProfileUseCase
	upsertUseCase *profile.UpsertProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getUseCase *profile.GetProfileUseCase,
	upsertUseCase *profile.UpsertProfileUseCase,
) *ProfileController {
	return &ProfileController{
		getUseCase:    getUseCase,
		upsertUseCase: upsertUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{
		UserID: userID,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// Upsert handles PUT /profile requests.
func (c *ProfileController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpsertProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingProfileFields),
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), profile.UpsertProfileInput{
		UserID:        userID,
		MonthlyIncome: req.MonthlyIncome,
		Country:       req.Country,
		Subregion:     req.Subregion,
		FixedExpenses: req.FixedExpenses,
		HabitWeights:  req.HabitWeights,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		statusCode := c.getStatusCodeForProfileError(profileErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrProfileNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Financial profile not found",
			Code:  string(domainerror.ErrCodeProfileNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProfileError maps profile error codes to HTTP status codes.
func (c *ProfileController) getStatusCodeForProfileError(code domainerror.ProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeProfileNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidMonthlyIncome,
		domainerror.ErrCodeInvalidHabitWeight,
		domainerror.ErrCodeInvalidFixedExpense,
		domainerror.ErrCodeMissingProfileFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

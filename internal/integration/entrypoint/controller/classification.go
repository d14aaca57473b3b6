// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/usecase/classification"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// ClassificationController handles income classification endpoints.
type ClassificationController struct {
	classifyUseCase *classification.ClassifyIncomeUseCase
}

// NewClassificationController creates a new classification controller instance.
func NewClassificationController(classifyUseCase *classification.ClassifyIncomeUseCase) *ClassificationController {
	return &ClassificationController{
		classifyUseCase: classifyUseCase,
	}
}

// Classify handles GET /classification requests.
// Query parameters monthly_income, country and subregion override the stored
// profile values for what-if queries.
func (c *ClassificationController) Classify(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := classification.ClassifyIncomeInput{
		UserID:    userID,
		Country:   ctx.Query("country"),
		Subregion: ctx.Query("subregion"),
	}

	if raw := ctx.Query("monthly_income"); raw != "" {
		income, err := decimal.NewFromString(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid monthly_income value",
				Code:  string(domainerror.ErrCodeInvalidIncome),
			})
			return
		}
		input.MonthlyIncome = &income
	}

	output, err := c.classifyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleClassificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClassificationResponse(output))
}

// handleClassificationError handles classification errors and returns appropriate HTTP responses.
func (c *ClassificationController) handleClassificationError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrProfileNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "No financial profile found; declare one or pass monthly_income",
			Code:  string(domainerror.ErrCodeProfileNotFound),
		})
		return
	}

	var classificationErr *domainerror.ClassificationError
	if errors.As(err, &classificationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: classificationErr.Message,
			Code:  string(classificationErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

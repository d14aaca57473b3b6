// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/usecase/calendar"
	"github.com/budget-planner/backend/internal/application/usecase/redistribution"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// CalendarController handles calendar and redistribution endpoints.
type CalendarController struct {
	buildUseCase        *calendar.BuildMonthCalendarUseCase
	redistributeUseCase *redistribution.RedistributeMonthUseCase
	historyUseCase      *redistribution.ListHistoryUseCase
}

// NewCalendarController creates a new calendar controller instance.
func NewCalendarController(
	buildUseCase *calendar.BuildMonthCalendarUseCase,
	redistributeUseCase *redistribution.RedistributeMonthUseCase,
	historyUseCase *redistribution.ListHistoryUseCase,
) *CalendarController {
	return &CalendarController{
		buildUseCase:        buildUseCase,
		redistributeUseCase: redistributeUseCase,
		historyUseCase:      historyUseCase,
	}
}

// Get handles GET /calendar/:year/:month requests.
func (c *CalendarController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, month, ok := c.parseYearMonth(ctx)
	if !ok {
		return
	}

	output, err := c.buildUseCase.Execute(ctx.Request.Context(), calendar.BuildMonthCalendarInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(output))
}

// Redistribute handles POST /calendar/:year/:month/redistribute requests.
func (c *CalendarController) Redistribute(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, month, ok := c.parseYearMonth(ctx)
	if !ok {
		return
	}

	output, err := c.redistributeUseCase.Execute(ctx.Request.Context(), redistribution.RedistributeMonthInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRedistributionResponse(output))
}

// History handles GET /calendar/:year/:month/redistributions requests.
func (c *CalendarController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, month, ok := c.parseYearMonth(ctx)
	if !ok {
		return
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), redistribution.ListHistoryInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRedistributionHistoryResponse(output.Records))
}

// parseYearMonth parses the :year and :month path parameters. It writes the
// error response itself and reports success through the bool.
func (c *CalendarController) parseYearMonth(ctx *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year value",
			Code:  string(domainerror.ErrCodeInvalidCalendarMonth),
		})
		return 0, 0, false
	}

	monthNum, err := strconv.Atoi(ctx.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month value",
			Code:  string(domainerror.ErrCodeInvalidCalendarMonth),
		})
		return 0, 0, false
	}

	return year, time.Month(monthNum), true
}

// handleCalendarError handles calendar errors and returns appropriate HTTP responses.
func (c *CalendarController) handleCalendarError(ctx *gin.Context, err error) {
	var calendarErr *domainerror.CalendarError
	if errors.As(err, &calendarErr) {
		statusCode := c.getStatusCodeForCalendarError(calendarErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: calendarErr.Message,
			Code:  string(calendarErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCalendarError maps calendar error codes to HTTP status codes.
func (c *CalendarController) getStatusCodeForCalendarError(code domainerror.CalendarErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCalendarMonth:
		return http.StatusBadRequest
	case domainerror.ErrCodeCalendarProfileRequired:
		return http.StatusPreconditionFailed
	case domainerror.ErrCodeRedistributionInProgress:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

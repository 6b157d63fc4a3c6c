// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/forecast/internal/application/usecase/forecast"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/middleware"
)

// Default generation window, matching the dashboard's view.
const (
	defaultMonthsBack    = 6
	defaultMonthsForward = 12
)

// ForecastController handles forecast endpoints.
type ForecastController struct {
	generateUseCase        *forecast.GenerateForecastsUseCase
	listUseCase            *forecast.ListForecastsUseCase
	suggestUseCase         *forecast.GenerateSuggestionsUseCase
	listSuggestionsUseCase *forecast.ListSuggestionsUseCase
}

// NewForecastController creates a new forecast controller instance.
func NewForecastController(
	generateUseCase *forecast.GenerateForecastsUseCase,
	listUseCase *forecast.ListForecastsUseCase,
	suggestUseCase *forecast.GenerateSuggestionsUseCase,
	listSuggestionsUseCase *forecast.ListSuggestionsUseCase,
) *ForecastController {
	return &ForecastController{
		generateUseCase:        generateUseCase,
		listUseCase:            listUseCase,
		suggestUseCase:         suggestUseCase,
		listSuggestionsUseCase: listSuggestionsUseCase,
	}
}

// Generate handles POST /forecasts/generate requests.
func (c *ForecastController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User is required",
			Code:  string(domainerror.ErrCodeMissingUser),
		})
		return
	}

	monthsBack, monthsForward, ok := parseWindow(ctx)
	if !ok {
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), forecast.GenerateForecastsInput{
		UserID:        userID,
		MonthsBack:    monthsBack,
		MonthsForward: monthsForward,
	})
	if err != nil {
		c.handleForecastError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGenerateForecastsResponse(output))
}

// List handles GET /forecasts requests.
func (c *ForecastController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User is required",
			Code:  string(domainerror.ErrCodeMissingUser),
		})
		return
	}

	monthsBack, monthsForward, ok := parseWindow(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), forecast.ListForecastsInput{
		UserID:        userID,
		MonthsBack:    monthsBack,
		MonthsForward: monthsForward,
	})
	if err != nil {
		c.handleForecastError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToForecastListResponse(output.Forecasts))
}

// GenerateSuggestions handles POST /forecasts/suggestions requests.
func (c *ForecastController) GenerateSuggestions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User is required",
			Code:  string(domainerror.ErrCodeMissingUser),
		})
		return
	}

	monthsBack := 0
	if raw := ctx.Query("months_back"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months_back must be an integer",
				Code:  string(domainerror.ErrCodeInvalidSuggestionSpan),
			})
			return
		}
		monthsBack = parsed
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), forecast.GenerateSuggestionsInput{
		UserID:     userID,
		MonthsBack: monthsBack,
	})
	if err != nil {
		c.handleForecastError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionListResponse(output.Suggestions))
}

// ListSuggestions handles GET /forecasts/suggestions requests.
func (c *ForecastController) ListSuggestions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User is required",
			Code:  string(domainerror.ErrCodeMissingUser),
		})
		return
	}

	output, err := c.listSuggestionsUseCase.Execute(ctx.Request.Context(), forecast.ListSuggestionsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleForecastError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionListResponse(output.Suggestions))
}

// parseWindow reads the months_back/months_forward query parameters,
// falling back to the default dashboard window.
func parseWindow(ctx *gin.Context) (monthsBack, monthsForward int, ok bool) {
	monthsBack = defaultMonthsBack
	monthsForward = defaultMonthsForward

	if raw := ctx.Query("months_back"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months_back must be an integer",
				Code:  string(domainerror.ErrCodeInvalidWindow),
			})
			return 0, 0, false
		}
		monthsBack = parsed
	}
	if raw := ctx.Query("months_forward"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months_forward must be an integer",
				Code:  string(domainerror.ErrCodeInvalidWindow),
			})
			return 0, 0, false
		}
		monthsForward = parsed
	}

	return monthsBack, monthsForward, true
}

// handleForecastError maps domain errors to HTTP responses.
func (c *ForecastController) handleForecastError(ctx *gin.Context, err error) {
	var forecastErr *domainerror.ForecastError
	if errors.As(err, &forecastErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: forecastErr.Message,
			Code:  string(forecastErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process forecast request",
		Code:  string(domainerror.ErrCodeForecastInternalError),
	})
}

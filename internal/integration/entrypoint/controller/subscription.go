// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/application/usecase/subscription"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/middleware"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	createUseCase *subscription.CreateSubscriptionUseCase
	listUseCase   *subscription.ListSubscriptionsUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	createUseCase *subscription.CreateSubscriptionUseCase,
	listUseCase *subscription.ListSubscriptionsUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /subscriptions requests.
func (c *SubscriptionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User is required",
			Code:  string(domainerror.ErrCodeMissingUser),
		})
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSubscriptionFields),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingSubscriptionFields),
		})
		return
	}

	input := subscription.CreateSubscriptionInput{
		UserID:       userID,
		Name:         req.Name,
		Amount:       decimal.NewFromFloat(req.Amount),
		Category:     req.Category,
		Frequency:    entity.Frequency(req.Frequency),
		StartDate:    startDate,
		ReminderDays: req.ReminderDays,
	}

	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingSubscriptionFields),
			})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	annotated := &subscription.SubscriptionWithSchedule{
		Subscription:      output.Subscription,
		MonthlyEquivalent: output.Subscription.MonthlyEquivalent().StringFixed(2),
	}
	ctx.JSON(http.StatusCreated, dto.ToSubscriptionResponse(annotated))
}

// List handles GET /subscriptions requests.
func (c *SubscriptionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User is required",
			Code:  string(domainerror.ErrCodeMissingUser),
		})
		return
	}

	input := subscription.ListSubscriptionsInput{UserID: userID}
	if raw := ctx.Query("status"); raw != "" {
		status := entity.SubscriptionStatus(raw)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionListResponse(output.Subscriptions))
}

// handleSubscriptionError maps domain errors to HTTP responses.
func (c *SubscriptionController) handleSubscriptionError(ctx *gin.Context, err error) {
	var subscriptionErr *domainerror.SubscriptionError
	if errors.As(err, &subscriptionErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: subscriptionErr.Message,
			Code:  string(subscriptionErr.Code),
		})
		return
	}

	var forecastErr *domainerror.ForecastError
	if errors.As(err, &forecastErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: forecastErr.Message,
			Code:  string(forecastErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process subscription request",
		Code:  string(domainerror.ErrCodeSubscriptionInternalError),
	})
}

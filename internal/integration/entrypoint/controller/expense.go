// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/application/usecase/expense"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/middleware"
)

// ExpenseController handles ledger endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User is required",
			Code:  string(domainerror.ErrCodeMissingUser),
		})
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	input := expense.CreateExpenseInput{
		UserID:             userID,
		Date:               date,
		Name:               req.Name,
		Description:        req.Description,
		Amount:             decimal.NewFromFloat(req.Amount),
		Category:           req.Category,
		IsCredit:           req.IsCredit,
		Installments:       req.Installments,
		CurrentInstallment: req.CurrentInstallment,
	}

	if req.TotalCreditAmount != nil {
		total := decimal.NewFromFloat(*req.TotalCreditAmount)
		input.TotalCreditAmount = &total
	}
	if req.CreditGroupID != nil {
		groupID, err := uuid.Parse(*req.CreditGroupID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid credit group ID format",
				Code:  string(domainerror.ErrCodeInvalidCreditTerms),
			})
			return
		}
		input.CreditGroupID = &groupID
	}
	if req.SubscriptionID != nil {
		subscriptionID, err := uuid.Parse(*req.SubscriptionID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid subscription ID format",
				Code:  string(domainerror.ErrCodeMissingExpenseFields),
			})
			return
		}
		input.SubscriptionID = &subscriptionID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User is required",
			Code:  string(domainerror.ErrCodeMissingUser),
		})
		return
	}

	input := expense.ListExpensesInput{UserID: userID}

	if raw := ctx.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &start
	}
	if raw := ctx.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &end
	}
	if raw := ctx.Query("is_credit"); raw != "" {
		isCredit := raw == "true"
		input.IsCredit = &isCredit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// handleExpenseError maps domain errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
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
		Error: "Failed to process expense request",
		Code:  string(domainerror.ErrCodeExpenseInternalError),
	})
}

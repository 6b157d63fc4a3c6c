// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/forecast/internal/application/usecase/forecast"
	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// GenerateForecastsResponse represents the result of a generation run.
type GenerateForecastsResponse struct {
	WindowStart     string `json:"window_start"`
	WindowEnd       string `json:"window_end"`
	MonthsGenerated int    `json:"months_generated"`
	FromCache       bool   `json:"from_cache"`
}

// MonthlyForecastResponse represents one per-month forecast row.
type MonthlyForecastResponse struct {
	ID    string `json:"id"`
	Month string `json:"month"`

	ActualSubscriptions string `json:"actual_subscriptions"`
	ActualCredits       string `json:"actual_credits"`
	ActualOtherExpenses string `json:"actual_other_expenses"`

	CurrentMonthEstimated string `json:"current_month_estimated"`
	CurrentMonthActual    string `json:"current_month_actual"`
	RemainingEstimate     string `json:"remaining_estimate"`
	AccuracyPercent       string `json:"accuracy_percent"`

	ProjectedSubscriptions string `json:"projected_subscriptions"`
	ProjectedCredits       string `json:"projected_credits"`
	ProjectedEstimates     string `json:"projected_estimates"`

	TotalProjected string `json:"total_projected"`

	UpdatedAt time.Time `json:"updated_at"`
}

// ForecastListResponse represents the response for listing forecast rows.
type ForecastListResponse struct {
	Forecasts []MonthlyForecastResponse `json:"forecasts"`
}

// ForecastRuleResponse represents a forecast rule or automatic suggestion.
type ForecastRuleResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Amount                 string    `json:"amount"`
	Category               string    `json:"category"`
	ExpenseType            string    `json:"expense_type"`
	Frequency              string    `json:"frequency"`
	StartDate              string    `json:"start_date"`
	EndDate                string    `json:"end_date"`
	Confidence             string    `json:"confidence"`
	IsActive               bool      `json:"is_active"`
	IsAutomaticSuggestion  bool      `json:"is_automatic_suggestion"`
	SuggestedBasedOnMonths int       `json:"suggested_based_on_months,omitempty"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// SuggestionListResponse represents the response for listing suggestions.
type SuggestionListResponse struct {
	Suggestions []ForecastRuleResponse `json:"suggestions"`
}

// ToGenerateForecastsResponse converts generation output to a DTO.
func ToGenerateForecastsResponse(output *forecast.GenerateForecastsOutput) GenerateForecastsResponse {
	return GenerateForecastsResponse{
		WindowStart:     output.WindowStart.Format("2006-01"),
		WindowEnd:       output.WindowEnd.Format("2006-01"),
		MonthsGenerated: output.MonthsGenerated,
		FromCache:       output.FromCache,
	}
}

// ToMonthlyForecastResponse converts a domain MonthlyForecast to a DTO.
func ToMonthlyForecastResponse(f *entity.MonthlyForecast) MonthlyForecastResponse {
	return MonthlyForecastResponse{
		ID:                     f.ID.String(),
		Month:                  f.Month.Format("2006-01"),
		ActualSubscriptions:    f.ActualSubscriptions.String(),
		ActualCredits:          f.ActualCredits.String(),
		ActualOtherExpenses:    f.ActualOtherExpenses.String(),
		CurrentMonthEstimated:  f.CurrentMonthEstimated.String(),
		CurrentMonthActual:     f.CurrentMonthActual.String(),
		RemainingEstimate:      f.RemainingEstimate().String(),
		AccuracyPercent:        f.AccuracyPercent().StringFixed(1),
		ProjectedSubscriptions: f.ProjectedSubscriptions.String(),
		ProjectedCredits:       f.ProjectedCredits.String(),
		ProjectedEstimates:     f.ProjectedEstimates.String(),
		TotalProjected:         f.TotalProjected.String(),
		UpdatedAt:              f.UpdatedAt,
	}
}

// ToForecastListResponse converts forecast rows to a list DTO.
func ToForecastListResponse(forecasts []*entity.MonthlyForecast) ForecastListResponse {
	responses := make([]MonthlyForecastResponse, len(forecasts))
	for i, f := range forecasts {
		responses[i] = ToMonthlyForecastResponse(f)
	}
	return ForecastListResponse{
		Forecasts: responses,
	}
}

// ToForecastRuleResponse converts a domain ForecastRule to a DTO.
func ToForecastRuleResponse(r *entity.ForecastRule) ForecastRuleResponse {
	return ForecastRuleResponse{
		ID:                     r.ID.String(),
		Name:                   r.Name,
		Amount:                 r.Amount.String(),
		Category:               r.Category,
		ExpenseType:            string(r.ExpenseType),
		Frequency:              string(r.Frequency),
		StartDate:              r.StartDate.Format("2006-01-02"),
		EndDate:                r.EndDate.Format("2006-01-02"),
		Confidence:             string(r.Confidence),
		IsActive:               r.IsActive,
		IsAutomaticSuggestion:  r.IsAutomaticSuggestion,
		SuggestedBasedOnMonths: r.SuggestedBasedOnMonths,
		UpdatedAt:              r.UpdatedAt,
	}
}

// ToSuggestionListResponse converts forecast rules to a suggestion list DTO.
func ToSuggestionListResponse(rules []*entity.ForecastRule) SuggestionListResponse {
	responses := make([]ForecastRuleResponse, len(rules))
	for i, r := range rules {
		responses[i] = ToForecastRuleResponse(r)
	}
	return SuggestionListResponse{
		Suggestions: responses,
	}
}

package server

import (
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/insight"
)

type viewSummary struct {
	ID    insight.ViewID `json:"id"`
	Title string         `json:"title"`
}

type viewResponse struct {
	ID      insight.ViewID `json:"id"`
	Title   string         `json:"title"`
	Count   int            `json:"count"`
	Filters domain.Filters `json:"filters"`
	Series  insight.Series `json:"series"`
	Table   insight.Table  `json:"table"`
}

type recordResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Owner           string  `json:"owner"`
	Department      string  `json:"department"`
	Region          string  `json:"region"`
	Status          string  `json:"status"`
	Phase           string  `json:"phase"`
	Progress        float64 `json:"progress"`
	Efficiency      float64 `json:"efficiency"`
	Risk            float64 `json:"risk"`
	Reward          float64 `json:"reward"`
	BudgetAllocated float64 `json:"budgetAllocated"`
	BudgetSpent     float64 `json:"budgetSpent"`
	DelayDays       int     `json:"delayDays"`
	StartDate       string  `json:"startDate"`
}

func toRecordResponse(r domain.ProjectRecord) recordResponse {
	return recordResponse{
		ID:              r.ID,
		Name:            r.Name,
		Owner:           r.Owner,
		Department:      string(r.Department),
		Region:          string(r.Region),
		Status:          string(r.Status),
		Phase:           string(r.Phase),
		Progress:        r.Progress,
		Efficiency:      r.Efficiency,
		Risk:            r.Risk,
		Reward:          r.Reward,
		BudgetAllocated: r.BudgetAllocated,
		BudgetSpent:     r.BudgetSpent,
		DelayDays:       r.DelayDays,
		StartDate:       r.StartDate.Format(time.DateOnly),
	}
}

type saveFilterRequest struct {
	Name    string          `json:"name"`
	Filters *domain.Filters `json:"filters,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

package models

// BudgetComparison pairs the budgeted ceiling with the actual spend for
// one category in one period. Budget is 0 when no budget was recorded.
type BudgetComparison struct {
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
	Actual   float64 `json:"actual"`
}

// Summary is the full set of derived dashboard metrics.
type Summary struct {
	Period             string             `json:"period"`
	TotalExpenses      float64            `json:"total_expenses"`
	TransactionCount   int                `json:"transaction_count"`
	AverageAmount      float64            `json:"average_amount"`
	TopCategory        string             `json:"top_category"`
	CategoryTotals     map[string]float64 `json:"category_totals"`
	MonthlyTotals      map[string]float64 `json:"monthly_totals"`
	RecentTransactions []Transaction      `json:"recent_transactions"`
	BudgetVsActual     []BudgetComparison `json:"budget_vs_actual"`
}

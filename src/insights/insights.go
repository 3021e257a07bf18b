// Package insights computes the derived dashboard metrics. Every function
// is a pure fold over in-memory record slices; nothing here touches the
// store, and everything is recomputed from scratch on each call.
package insights

import (
	"math"
	"sort"
	"strings"
	"time"

	"fintrack-server/src/models"
)

// OthersCategory is the bucket for transactions with a blank category.
const OthersCategory = "Others"

// NoSpending is the TopCategory sentinel when no transactions exist.
const NoSpending = "N/A"

// DashboardCategories is the fixed list the budget-vs-actual comparison
// covers, whether or not any record uses a given category.
var DashboardCategories = []string{"Food", "Travel", "Shopping", "Bills", "Others"}

// MonthLabel keys the monthly totals chart, e.g. "Apr 2025".
func MonthLabel(date time.Time) string {
	return date.Format("Jan 2006")
}

// PeriodLabel keys budget records, e.g. "Apr-2025".
func PeriodLabel(date time.Time) string {
	return date.Format("Jan-2006")
}

func TotalExpenses(transactions []models.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		total += t.Amount
	}
	return total
}

func CategoryTotals(transactions []models.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range transactions {
		totals[bucket(t.Category)] += t.Amount
	}
	return totals
}

func MonthlyTotals(transactions []models.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range transactions {
		totals[MonthLabel(t.Date)] += t.Amount
	}
	return totals
}

// RecentTransactions returns the n most recent transactions by date,
// newest first. The sort is stable, so same-date records keep their
// input order. Returns fewer than n when fewer exist.
func RecentTransactions(transactions []models.Transaction, n int) []models.Transaction {
	recent := make([]models.Transaction, len(transactions))
	copy(recent, transactions)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

// BudgetVsActual compares budgeted against actual spend for each
// dashboard category, both scoped to the same period label. Categories
// without a recorded budget report a budget of 0.
func BudgetVsActual(transactions []models.Transaction, budgets []models.Budget, period string) []models.BudgetComparison {
	actuals := make(map[string]float64)
	for _, t := range transactions {
		if PeriodLabel(t.Date) != period {
			continue
		}
		actuals[bucket(t.Category)] += t.Amount
	}

	budgeted := make(map[string]float64)
	for _, b := range budgets {
		if b.Month == period {
			budgeted[b.Category] = b.Amount
		}
	}

	comparison := make([]models.BudgetComparison, 0, len(DashboardCategories))
	for _, category := range DashboardCategories {
		comparison = append(comparison, models.BudgetComparison{
			Category: category,
			Budget:   budgeted[category],
			Actual:   actuals[category],
		})
	}
	return comparison
}

// TopCategory returns the category with the highest total. Ties go to
// the lexicographically smaller name so the result is deterministic.
func TopCategory(transactions []models.Transaction) string {
	totals := CategoryTotals(transactions)
	if len(totals) == 0 {
		return NoSpending
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	top := names[0]
	for _, name := range names[1:] {
		if totals[name] > totals[top] {
			top = name
		}
	}
	return top
}

// AverageAmount is the mean transaction amount rounded to 2 decimal
// places, 0 when there are no transactions.
func AverageAmount(transactions []models.Transaction) float64 {
	if len(transactions) == 0 {
		return 0
	}
	return round2(TotalExpenses(transactions) / float64(len(transactions)))
}

// BuildSummary assembles every derived metric for one period label.
func BuildSummary(transactions []models.Transaction, budgets []models.Budget, period string) models.Summary {
	return models.Summary{
		Period:             period,
		TotalExpenses:      TotalExpenses(transactions),
		TransactionCount:   len(transactions),
		AverageAmount:      AverageAmount(transactions),
		TopCategory:        TopCategory(transactions),
		CategoryTotals:     CategoryTotals(transactions),
		MonthlyTotals:      MonthlyTotals(transactions),
		RecentTransactions: RecentTransactions(transactions, 3),
		BudgetVsActual:     BudgetVsActual(transactions, budgets, period),
	}
}

func bucket(category string) string {
	if strings.TrimSpace(category) == "" {
		return OthersCategory
	}
	return category
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

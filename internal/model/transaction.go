package model

// Category groups cash-flow transactions (e.g. "Salary", "Rent").
// Type is "income" or "expense".
type Category struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DisplayOrder int    `json:"displayOrder"`
}

// Transaction is one recorded cash-flow item for one calendar month.
// Amount is a decimal string, same convention as MonthlyValue.Value.
type Transaction struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	CategoryID  string `json:"categoryId"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// CategoryTotal is the summed amount of one category within a month.
type CategoryTotal struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Type         string  `json:"type"`
	Total        float64 `json:"total"`
}

// MonthlySummary is the cash-flow summary of one month: total income,
// total expenses and the per-category breakdown.
type MonthlySummary struct {
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	TotalIncome  float64         `json:"totalIncome"`
	TotalExpense float64         `json:"totalExpense"`
	Net          float64         `json:"net"`
	ByCategory   []CategoryTotal `json:"byCategory"`
}

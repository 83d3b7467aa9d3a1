package request

// CreateCategoryRequest is the body of POST /api/categories.
type CreateCategoryRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	DisplayOrder int    `json:"displayOrder"`
}

// CreateTransactionRequest is the body of POST /api/transactions.
type CreateTransactionRequest struct {
	CategoryID  string `json:"categoryId"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// CreateDemoSessionRequest is the body of POST /api/session/demo.
type CreateDemoSessionRequest struct {
	DisplayName     string `json:"displayName"`
	DefaultCurrency string `json:"defaultCurrency"`
}

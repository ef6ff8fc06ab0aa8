package models

import "encoding/json"

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid input"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"estimator@example.com"`
	Password string `json:"password" binding:"required" example:""`
}

type LoginResponse struct {
	Message      string `json:"message" example:"User successfully logged in"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ExtractRequest carries pasted free text for AI extraction. HTML pastes are
// flattened to plain text before the text reaches the model.
type ExtractRequest struct {
	Text string `json:"text" binding:"required" example:"Supply M25 RMC at 4850.50 per Cum including curing"`
}

// CatalogListResponse is the searchable catalog listing with benchmark flags.
type CatalogListResponse struct {
	Entries []CatalogEntry `json:"entries"`
	Count   int            `json:"count" example:"42"`
}

// ExtractAddResponse reports a paste-to-catalog extraction round.
type ExtractAddResponse struct {
	Message string      `json:"message" example:"Extracted and added 3 rate entries"`
	Added   []RateEntry `json:"added"`
	Count   int         `json:"count" example:"3"`
}

// ImportResult reports a CSV catalog import: valid rows are added as one
// batch, bad rows are reported individually.
type ImportResult struct {
	Message      string   `json:"message" example:"Import completed"`
	SuccessCount int      `json:"success_count" example:"40"`
	ErrorCount   int      `json:"error_count" example:"2"`
	Errors       []string `json:"errors,omitempty"`
}

// RestoreRequest carries a backup payload. Data is kept raw so the handler
// can validate the array shape itself and reject invalid files without
// touching the store. Confirm=false previews the restore (item count only).
type RestoreRequest struct {
	Data    json.RawMessage `json:"data" binding:"required" swaggertype:"object"`
	Confirm bool            `json:"confirm" example:"false"`
}

type RestoreResponse struct {
	Message              string `json:"message" example:"Backup contains 42 entries. Confirm to replace the current catalog."`
	Count                int    `json:"count" example:"42"`
	RequiresConfirmation bool   `json:"requires_confirmation" example:"true"`
	Restored             bool   `json:"restored" example:"false"`
}

// TenderResponse is the current tender list with its recomputed grand total.
type TenderResponse struct {
	Items      []TenderLineItem `json:"items"`
	GrandTotal float64          `json:"grandTotal" example:"582060"`
	Count      int              `json:"count" example:"5"`
}

package http

// APIResponse is the envelope every endpoint writes. Status mirrors what the
// request would have earned as an HTTP status; the transport status is 200.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// APIResponse400Err is the envelope of a rejected classify or history request.
type APIResponse400Err struct {
	Status  int               `json:"status" example:"400"`
	Message string            `json:"message" example:"Bad Request"`
	Data    []ValidationError `json:"data,omitempty"`
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_ONEOF"`
	Field   string                 `json:"field,omitempty" example:"kc_position"`
	Message string                 `json:"message,omitempty" example:"kc_position must be one of: Above KC Upper, Near VWAP"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// ListDataResponse is a page of rows, most recent first. Total counts every
// retained row, Limit is the page size that was applied.
type ListDataResponse struct {
	Rows  interface{} `json:"rows"`
	Total int64       `json:"total" example:"42"`
	Limit int         `json:"limit,omitempty" example:"10"`
}

// ClearedData reports how many history rows a clear dropped.
type ClearedData struct {
	Cleared int    `json:"cleared" example:"3"`
	Message string `json:"message" example:"History cleared!"`
}

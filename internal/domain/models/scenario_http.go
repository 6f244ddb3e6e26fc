package models

// Request bodies for the classify and history endpoints.

type NumericRequest struct {
	Price    *float64 `json:"price" validate:"required"`
	VWAP     *float64 `json:"vwap" validate:"required"`
	KCUpper  *float64 `json:"kc_upper" validate:"required"`
	KCMiddle *float64 `json:"kc_middle" validate:"required"`
	KCLower  *float64 `json:"kc_lower" validate:"required"`
}

type CategoricalRequest struct {
	PriceVWAP  string `json:"price_vwap" validate:"required,oneof='Above VWAP' 'At VWAP' 'Below VWAP'"`
	VWAPSlope  string `json:"vwap_slope" validate:"required,oneof=Rising Falling"`
	KCPosition string `json:"kc_position" validate:"required,oneof='Above KC Upper' 'Between KC Middle & Upper' 'Near VWAP' 'At or Near KC Middle' 'Between KC Middle & Lower' 'Below KC Lower'"`
	Distance   string `json:"distance" validate:"required,oneof=Large Moderate Small N/A"`
}

type SlopeRequest struct {
	PriceVWAP  string   `json:"price_vwap" validate:"required,oneof='Above VWAP' 'At VWAP' 'Below VWAP'"`
	VWAPSlope  string   `json:"vwap_slope" validate:"required,oneof=Rising Falling"`
	KCPosition string   `json:"kc_position" validate:"required,oneof='Above KC Upper' 'Between KC Middle & Upper' 'Near VWAP' 'At or Near KC Middle' 'Between KC Middle & Lower' 'Below KC Lower'"`
	PointsDiff *float64 `json:"points_diff" default:"0"`
}

type HistoryRequest struct {
	Limit int    `query:"limit" json:"limit" default:"10" validate:"gte=1,lte=500"`
	Since string `query:"since" json:"since"`
}

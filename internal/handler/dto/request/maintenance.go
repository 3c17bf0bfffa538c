package request

type ReportDamageRequest struct {
	Location    string `json:"location" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=pontoon electrical water mooring other"`
	Severity    string `json:"severity" binding:"required,oneof=low medium high critical"`
	Description string `json:"description" binding:"required"`
	PhotoURL    string `json:"photo_url" binding:"omitempty,url"`
}

type AdvanceDamageRequest struct {
	Status string `json:"status" binding:"required,oneof=acknowledged in_progress completed cancelled"`
}

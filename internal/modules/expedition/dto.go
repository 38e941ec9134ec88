package expedition

type CreateExpeditionRequest struct {
	DepartureCity string  `json:"departure_city" binding:"required"`
	ArrivalCity   string  `json:"arrival_city" binding:"required"`
	Date          string  `json:"date" binding:"required"` // 2006-01-02
	Time          string  `json:"time" binding:"required"` // 15:04
	Capacity      int     `json:"capacity"`
	Price         float64 `json:"price" binding:"required"`
	DurationHours float64 `json:"duration_hours" binding:"required"`
}

type SearchQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
	Date string `form:"date" binding:"required"`
}

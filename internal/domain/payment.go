package domain

import "time"

type PaymentState string

const (
	PaymentPending  PaymentState = "PENDING"
	PaymentSuccess  PaymentState = "SUCCESS"
	PaymentFailed   PaymentState = "FAILED"
	PaymentRefunded PaymentState = "REFUNDED"
)

type Payment struct {
	ID         string       `json:"id"`
	CardID     int64        `json:"card_id"`
	CustomerID int64        `json:"customer_id"`
	Amount     float64      `json:"amount"`
	Status     PaymentState `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}

type Card struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	CardNumber string `json:"card_number"` // stored masked, e.g. "**** **** **** 4242"
	HolderName string `json:"holder_name"`
	Expiry     string `json:"expiry"`
	IsActive   bool   `json:"is_active"`
}

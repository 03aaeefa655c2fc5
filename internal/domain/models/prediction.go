package models

// DateLayout is the canonical serialized form of prediction dates.
const DateLayout = "2006-01-02"

// SparePart is a single replaceable-part recommendation. Price is in the
// smallest currency unit (rupiah).
type SparePart struct {
	Name   string `json:"name" bson:"name"`
	Price  int    `json:"price" bson:"price"`
	Reason string `json:"reason" bson:"reason"`
}

// PredictionRecord is a maintenance-reminder entry for one customer on one
// date. Records are built once at startup and never mutated afterwards.
type PredictionRecord struct {
	PhoneNumber   string      `json:"phone_number"`
	Date          string      `json:"date"`
	SpareParts    []SparePart `json:"spare_parts"`
	AvgKmPerMonth float64     `json:"avg_km_per_month"`
}

// NotificationRequest is a caller-supplied reminder to relay. Date is
// free-form text used only for message rendering. AvgKmPerMonth is accepted
// for symmetry with PredictionRecord but not rendered.
type NotificationRequest struct {
	PhoneNumber   string      `json:"phone_number" binding:"required"`
	Date          string      `json:"date"`
	SpareParts    []SparePart `json:"spare_parts"`
	AvgKmPerMonth float64     `json:"avg_km_per_month"`
}

// DispatchResult reports how far a dispatch got. Sent counts messages
// delivered before the first failure; those sends are not rolled back when
// the overall call fails.
type DispatchResult struct {
	Sent int
}

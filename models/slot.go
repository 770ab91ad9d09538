package models

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
)

// Slot is a candidate 30-minute consultation window derived from a doctor's
// weekly availability for one concrete date. Slots are regenerated on every
// query and never persisted.
type Slot struct {
	Time        string `json:"time"`     // "HH:MM"
	DateTime    string `json:"datetime"` // "2006-01-02T15:04:05"
	IsAvailable bool   `json:"is_available"`
	Status      string `json:"status"` // "available" or "booked"
	IsPast      bool   `json:"is_past"`
}

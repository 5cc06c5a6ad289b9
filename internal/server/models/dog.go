package models

import "time"

// Dog is an adoption record. Name is unique; Picture is sourced from the
// external random-image service at creation time. Stage progress is not kept
// here but in the status store, keyed by Name.
type Dog struct {
	ID         int64
	UserID     int64
	Name       string
	Picture    string
	IsAdopted  bool
	CreateDate time.Time
}

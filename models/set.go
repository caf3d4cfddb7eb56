package models

// Set is a named grouping of flashcards. Names are not unique.
type Set struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:200" json:"name"`
}

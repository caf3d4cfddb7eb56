package models

// Flashcard is a question/answer pair. SetID is nullable: a card may
// exist unassigned to any set, and no foreign-key constraint is
// enforced at insert time.
type Flashcard struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"not null;size:1000" json:"question"`
	Answer   string `gorm:"not null;size:1000" json:"answer"`
	SetID    *uint  `gorm:"index" json:"set_id"`
}

package models

// User represents a registered account. The password hash never leaves
// the server; only id and username are serialized.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null;size:100" json:"username"`
	PasswordHash string `gorm:"not null;size:255" json:"-"`
}

package models

// AdminAccount lives in its own table, disjoint from users. Registering a
// new admin requires an existing admin id, so the first row must be seeded
// directly in the database.
type AdminAccount struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"size:255;uniqueIndex" json:"email"`
	Password string `gorm:"size:255" json:"password"`
}

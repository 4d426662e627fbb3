package model

import (
	"time"
)

// Transaction represents the database model for the credit purchase ledger.
// The id is the opaque receipt handed to the payment gateway.
type Transaction struct {
	ID      string    `gorm:"primaryKey;size:64"`
	UserID  uint64    `gorm:"not null;index"`
	Plan    string    `gorm:"not null;size:50"`
	Amount  int64     `gorm:"not null"`
	Credits int64     `gorm:"not null"`
	Payment bool      `gorm:"not null;default:false"`
	Date    time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentType enumerates how a payment is settled.
type PaymentType string

const (
	PaymentCreditCard PaymentType = "Credit Card"
	PaymentDebitCard  PaymentType = "Debit Card"
	PaymentCash       PaymentType = "Cash"
)

// PaymentStatus enumerates the lifecycle states of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentCancelled PaymentStatus = "Cancelled"
	PaymentFailed    PaymentStatus = "Failed"
)

// Payment is a money transfer between two users. Its primary key is a
// SHA-256 hex digest minted from a random UUID on first save and kept
// stable for the lifetime of the record.
type Payment struct {
	PaymentHash   string          `gorm:"primaryKey;size:100" json:"payment_hash"`
	OwnerID       uint            `gorm:"index;not null" json:"owner_id"`
	Owner         *User           `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner,omitempty"`
	ReceiverID    uint            `gorm:"index;not null" json:"receiver_id"`
	Receiver      *User           `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"receiver,omitempty"`
	PaymentType   PaymentType     `gorm:"type:varchar(20);default:'Credit Card'" json:"payment_type"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);default:'Pending'" json:"payment_status"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Description   string          `gorm:"type:text" json:"description"`
	BillDate      time.Time       `json:"bill_date"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BeforeSave mints the primary-key hash once and stamps UpdatedAt.
// An already-set hash is never regenerated.
func (p *Payment) BeforeSave(tx *gorm.DB) error {
	if p.PaymentHash == "" {
		seed := uuid.New()
		sum := sha256.Sum256(seed[:])
		p.PaymentHash = hex.EncodeToString(sum[:])
	}
	p.UpdatedAt = time.Now()
	return nil
}

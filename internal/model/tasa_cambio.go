package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TasaCambio is an exchange rate record (bolívares per dollar). Exactly one
// row has Activa=true at any time; setting a new rate deactivates the previous
// one inside the same transaction. A partial unique index on (activa) where
// activa = true backs the invariant at the store level.
type TasaCambio struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TasaBsUSD  decimal.Decimal `gorm:"type:decimal(18,4);not null;column:tasa_bs_usd"`
	Usuario    *string
	Observaciones *string
	Activa     bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
}

func (TasaCambio) TableName() string { return "tasas_cambio" }

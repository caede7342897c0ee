package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package is a billing plan. Bills may point at one, but keep their own
// amount so price changes never rewrite history.
type Package struct {
	ID           string
	AdminID      string
	Name         string
	Description  string
	Price        decimal.Decimal
	BillingCycle string // monthly, quarterly, yearly...
	Features     []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kid struct {
	ID                   int64           `json:"id"`
	UserID               int64           `json:"user_id"`
	Name                 string          `json:"name"`
	Birthday             time.Time       `json:"birthday"`
	PocketMoneyAmount    decimal.Decimal `json:"pocket_money_amount"`
	PocketMoneyFrequency Frequency       `json:"pocket_money_frequency"`
	AvatarColor          string          `json:"avatar_color"`
	SavingsSplit         int             `json:"savings_split"`
	NetWealth            decimal.Decimal `json:"net_wealth"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

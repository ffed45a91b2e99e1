package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	OrderStatusDelivered  = "Delivered"
	OrderStatusProcessing = "Processing"
	OrderStatusCancelled  = "Cancelled"
)

// ItemNames is a list of dish names stored as a JSON column.
type ItemNames []string

func (n ItemNames) Value() (driver.Value, error) {
	return json.Marshal(n)
}

func (n *ItemNames) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, n)
	case string:
		return json.Unmarshal([]byte(v), n)
	default:
		return fmt.Errorf("unsupported item names column type %T", value)
	}
}

// Order is a historical order shown on the dashboard.
type Order struct {
	ID     string    `gorm:"primaryKey" json:"id"`
	Date   string    `gorm:"type:varchar(32); not null" json:"date"`
	Total  int       `gorm:"not null" json:"total"`
	Status string    `gorm:"type:varchar(32); not null" json:"status"`
	Items  ItemNames `gorm:"type:text" json:"items"`
}

// OrderSeed is the fixed order history every account sees. Checkout does not
// append to it; the dashboard history and the checkout flow are intentionally
// disconnected.
var OrderSeed = []Order{
	{
		ID:     "ORD-7721",
		Date:   "2024-02-15",
		Total:  2450,
		Status: OrderStatusDelivered,
		Items:  ItemNames{"Beef Nihari", "Garlic Naan", "Sweet Lassi"},
	},
	{
		ID:     "ORD-8812",
		Date:   "2024-01-20",
		Total:  1200,
		Status: OrderStatusDelivered,
		Items:  ItemNames{"Chicken Karahi", "Tandoori Roti"},
	},
}

// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// DecimalMapJSON stores a category -> amount map as a JSONB column.
type DecimalMapJSON map[string]decimal.Decimal

// Value implements the driver.Valuer interface.
func (m DecimalMapJSON) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]decimal.Decimal{})
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface.
func (m *DecimalMapJSON) Scan(value interface{}) error {
	if value == nil {
		*m = DecimalMapJSON{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for DecimalMapJSON")
	}
}

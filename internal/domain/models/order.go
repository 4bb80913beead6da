package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one completed commerce order as consumed by the report
// pipeline. Only DateCreated drives the time series; Total and Currency
// feed the summary block.
type Order struct {
	ID          int64
	Number      string
	Status      string
	DateCreated time.Time
	Total       decimal.Decimal
	Currency    string
}

package models

// WeightUnit is the measurement marker for products tracked by weight
const WeightUnit = "KGS"

// JobOrderRow is one row of the production plan lookup joined across
// product config, plan, sales order and customer.
// Order and customer columns are nullable because of the outer joins.
type JobOrderRow struct {
	Qty         *float64 `gorm:"column:qty"`
	Weight      *float64 `gorm:"column:weight"`
	Measurement *string  `gorm:"column:measurement"`
	StkCode     string   `gorm:"column:stk_code"`
	SizeWidth   *float64 `gorm:"column:size_width"`
	SizeLength  *float64 `gorm:"column:size_length"`
	SizeThick   *float64 `gorm:"column:size_thick"`
	CustName    *string  `gorm:"column:cust_name"`
}

// JobOrder is the projection returned to the inspection client
type JobOrder struct {
	CustomerName *string  `json:"CustomerName"`
	OrderQty     *float64 `json:"OrderQty"`
	Width        *float64 `json:"Width"`
	Length       *float64 `json:"Length"`
	Thickness    *float64 `json:"Thickness"`
}

// OrderQty picks the weight for weight-tracked products and the piece count otherwise
func (r JobOrderRow) OrderQty() *float64 {
	if r.Measurement != nil && *r.Measurement == WeightUnit {
		return r.Weight
	}
	return r.Qty
}

// ToJobOrder projects the row onto the API shape
func (r JobOrderRow) ToJobOrder() *JobOrder {
	return &JobOrder{
		CustomerName: r.CustName,
		OrderQty:     r.OrderQty(),
		Width:        r.SizeWidth,
		Length:       r.SizeLength,
		Thickness:    r.SizeThick,
	}
}

package models

import "testing"

func f64(v float64) *float64 { return &v }
func str(v string) *string    { return &v }

func TestJobOrderRowOrderQty(t *testing.T) {
	tests := []struct {
		name        string
		measurement *string
		want        float64
	}{
		{"weight unit uses weight", str("KGS"), 250.5},
		{"piece unit uses qty", str("PCS"), 1200},
		{"lower case is not the weight unit", str("kgs"), 1200},
		{"null measurement uses qty", nil, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := JobOrderRow{Qty: f64(1200), Weight: f64(250.5), Measurement: tt.measurement}
			got := row.OrderQty()
			if got == nil || *got != tt.want {
				t.Errorf("OrderQty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToJobOrderKeepsNulls(t *testing.T) {
	row := JobOrderRow{Qty: f64(5), StkCode: "STK-1", SizeWidth: f64(100)}

	jo := row.ToJobOrder()
	if jo.CustomerName != nil {
		t.Errorf("Expected nil customer, got %v", *jo.CustomerName)
	}
	if jo.Length != nil || jo.Thickness != nil {
		t.Error("Expected missing dimensions to stay nil")
	}
	if jo.Width == nil || *jo.Width != 100 {
		t.Errorf("Expected width 100, got %v", jo.Width)
	}
}

func TestInspectionJobOrder(t *testing.T) {
	tests := []struct {
		name    string
		payload Inspection
		want    bool
	}{
		{"missing", Inspection{"foo": "bar"}, false},
		{"null", Inspection{"jobOrder": nil}, false},
		{"empty string", Inspection{"jobOrder": ""}, false},
		{"false", Inspection{"jobOrder": false}, false},
		{"zero", Inspection{"jobOrder": float64(0)}, false},
		{"string", Inspection{"jobOrder": "LOT1"}, true},
		{"number", Inspection{"jobOrder": float64(42)}, true},
		{"object", Inspection{"jobOrder": map[string]interface{}{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.payload.JobOrder(); ok != tt.want {
				t.Errorf("JobOrder() ok = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestInspectionClone(t *testing.T) {
	orig := Inspection{"jobOrder": "LOT1"}
	cp := orig.Clone()
	cp[ServerTimestampField] = "now"

	if _, ok := orig[ServerTimestampField]; ok {
		t.Error("Clone must not share the underlying map")
	}
}

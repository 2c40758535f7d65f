package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

type sample struct {
	Name  string           `validate:"required,notblank"`
	Value decimal.Decimal  `validate:"money"`
	Paid  *decimal.Decimal `validate:"omitempty,money"`
}

func TestNotBlank(t *testing.T) {
	ok := sample{Name: "Pix", Value: decimal.RequireFromString("1")}
	if err := Validate.Struct(ok); err != nil {
		t.Errorf("valid struct: %v", err)
	}

	blank := sample{Name: "   ", Value: decimal.RequireFromString("1")}
	if err := Validate.Struct(blank); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestMoney(t *testing.T) {
	cases := map[string]bool{
		"150.75":        true,
		"0":             true,
		"1200":          true,
		"9999999999.99": true,
		"10000000000":   false,
		"1.005":         false,
	}
	for in, want := range cases {
		s := sample{Name: "x", Value: decimal.RequireFromString(in)}
		err := Validate.Struct(s)
		if got := err == nil; got != want {
			t.Errorf("money(%s) valid = %v, want %v (err: %v)", in, got, want, err)
		}
	}
}

func TestMoneyPointer(t *testing.T) {
	bad := decimal.RequireFromString("0.001")
	if err := Validate.Struct(sample{Name: "x", Paid: &bad}); err == nil {
		t.Error("expected error for pointer value with three decimals")
	}
	if err := Validate.Struct(sample{Name: "x"}); err != nil {
		t.Errorf("nil pointer must be skipped: %v", err)
	}
}

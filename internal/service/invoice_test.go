package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func item(amount string) model.InvoiceLineItem {
	return model.InvoiceLineItem{Amount: dec(amount)}
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name      string
		items     []model.InvoiceLineItem
		taxes     []model.InvoiceTax
		discounts []model.InvoiceDiscount
		want      Totals
	}{
		{
			name:  "empty invoice",
			items: nil,
			want:  Totals{Subtotal: dec("0"), TaxTotal: dec("0"), DiscountTotal: dec("0"), GrandTotal: dec("0")},
		},
		{
			name:  "single room charge",
			items: []model.InvoiceLineItem{item("1000")},
			want:  Totals{Subtotal: dec("1000"), TaxTotal: dec("0"), DiscountTotal: dec("0"), GrandTotal: dec("1000")},
		},
		{
			name:  "room plus tax plus percentage discount",
			items: []model.InvoiceLineItem{item("1000")},
			taxes: []model.InvoiceTax{{Name: "GST", Rate: dec("18")}},
			discounts: []model.InvoiceDiscount{
				{Name: "Loyalty", Percentage: decPtr("10")},
			},
			want: Totals{Subtotal: dec("1000"), TaxTotal: dec("180"), DiscountTotal: dec("100"), GrandTotal: dec("1080")},
		},
		{
			name:  "multiple taxes stack on the same subtotal",
			items: []model.InvoiceLineItem{item("200"), item("300")},
			taxes: []model.InvoiceTax{
				{Name: "GST", Rate: dec("18")},
				{Name: "Service", Rate: dec("2")},
			},
			want: Totals{Subtotal: dec("500"), TaxTotal: dec("100"), DiscountTotal: dec("0"), GrandTotal: dec("600")},
		},
		{
			name:  "fixed discount is not re-derived",
			items: []model.InvoiceLineItem{item("1000")},
			discounts: []model.InvoiceDiscount{
				{Name: "Voucher", Amount: dec("250")},
			},
			want: Totals{Subtotal: dec("1000"), TaxTotal: dec("0"), DiscountTotal: dec("250"), GrandTotal: dec("750")},
		},
		{
			name:  "discount larger than invoice drives grand total negative",
			items: []model.InvoiceLineItem{item("100")},
			discounts: []model.InvoiceDiscount{
				{Name: "Comp", Amount: dec("500")},
			},
			want: Totals{Subtotal: dec("100"), TaxTotal: dec("0"), DiscountTotal: dec("500"), GrandTotal: dec("-400")},
		},
		{
			name:  "mixed fixed and percentage discounts",
			items: []model.InvoiceLineItem{item("1000"), item("500")},
			taxes: []model.InvoiceTax{{Name: "GST", Rate: dec("10")}},
			discounts: []model.InvoiceDiscount{
				{Name: "Voucher", Amount: dec("100")},
				{Name: "Member", Percentage: decPtr("20")},
			},
			// subtotal 1500, tax 150, discounts 100 + 300
			want: Totals{Subtotal: dec("1500"), TaxTotal: dec("150"), DiscountTotal: dec("400"), GrandTotal: dec("1250")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.items, tc.taxes, tc.discounts)
			if !got.Subtotal.Equal(tc.want.Subtotal) {
				t.Errorf("subtotal = %s, want %s", got.Subtotal, tc.want.Subtotal)
			}
			if !got.TaxTotal.Equal(tc.want.TaxTotal) {
				t.Errorf("tax total = %s, want %s", got.TaxTotal, tc.want.TaxTotal)
			}
			if !got.DiscountTotal.Equal(tc.want.DiscountTotal) {
				t.Errorf("discount total = %s, want %s", got.DiscountTotal, tc.want.DiscountTotal)
			}
			if !got.GrandTotal.Equal(tc.want.GrandTotal) {
				t.Errorf("grand total = %s, want %s", got.GrandTotal, tc.want.GrandTotal)
			}
		})
	}
}

// Tax and percentage-discount rows must carry their recomputed amounts
// back to the caller so they can be persisted.
func TestComputeTotalsRewritesDerivedAmounts(t *testing.T) {
	items := []model.InvoiceLineItem{item("2000")}
	taxes := []model.InvoiceTax{{Name: "GST", Rate: dec("18"), Amount: dec("0")}}
	discounts := []model.InvoiceDiscount{
		{Name: "Member", Percentage: decPtr("10"), Amount: dec("999")},
		{Name: "Voucher", Amount: dec("50")},
	}

	ComputeTotals(items, taxes, discounts)

	if !taxes[0].Amount.Equal(dec("360")) {
		t.Errorf("tax amount = %s, want 360", taxes[0].Amount)
	}
	if !discounts[0].Amount.Equal(dec("200")) {
		t.Errorf("percentage discount amount = %s, want 200", discounts[0].Amount)
	}
	if !discounts[1].Amount.Equal(dec("50")) {
		t.Errorf("fixed discount amount = %s, want it untouched at 50", discounts[1].Amount)
	}
}

func TestStayNights(t *testing.T) {
	base := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		checkout time.Time
		want     int64
	}{
		{"same moment", base, 1},
		{"a few hours later", base.Add(6 * time.Hour), 1},
		{"just under one day", base.Add(24*time.Hour - time.Minute), 1},
		{"exactly one day", base.Add(24 * time.Hour), 1},
		{"one day and a bit", base.Add(30 * time.Hour), 1},
		{"three days", base.AddDate(0, 0, 3), 3},
		{"checkout before checkin", base.Add(-48 * time.Hour), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StayNights(base, tc.checkout); got != tc.want {
				t.Errorf("StayNights = %d, want %d", got, tc.want)
			}
		})
	}
}

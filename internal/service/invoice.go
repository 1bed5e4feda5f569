// Package service implements the business operations of the hotel
// backend. The booking lifecycle engine lives here, orchestrating room
// occupancy transitions, invoice mutations and totals recalculation
// inside single database transactions.
package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

var oneHundred = decimal.NewFromInt(100)

// Totals holds the four derived monetary fields of a booking after a
// recalculation.
type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// ComputeTotals runs the invoice recalculation over the current set of
// charge rows and returns the four derived totals. Tax amounts and
// percentage discount amounts are rewritten in place, because both are
// derived from the subtotal and the subtotal may have changed since
// they were inserted. Fixed-amount discounts are left untouched. Line
// item amounts are taken as stored; they are fixed at insertion time.
//
// The grand total is subtotal + taxes − discounts with no floor at
// zero: discounts exceeding the rest of the invoice legally drive it
// negative.
func ComputeTotals(items []model.InvoiceLineItem, taxes []model.InvoiceTax, discounts []model.InvoiceDiscount) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}

	taxTotal := decimal.Zero
	for i := range taxes {
		taxes[i].Amount = subtotal.Mul(taxes[i].Rate).Div(oneHundred)
		taxTotal = taxTotal.Add(taxes[i].Amount)
	}

	discountTotal := decimal.Zero
	for i := range discounts {
		if discounts[i].Percentage != nil {
			discounts[i].Amount = subtotal.Mul(*discounts[i].Percentage).Div(oneHundred)
		}
		discountTotal = discountTotal.Add(discounts[i].Amount)
	}

	return Totals{
		Subtotal:      subtotal,
		TaxTotal:      taxTotal,
		DiscountTotal: discountTotal,
		GrandTotal:    subtotal.Add(taxTotal).Sub(discountTotal),
	}
}

// StayNights returns the number of billable nights between check-in
// and checkout: whole days elapsed, with a minimum of one night.
func StayNights(checkin, checkout time.Time) int64 {
	days := int64(checkout.Sub(checkin) / (24 * time.Hour))
	if days < 1 {
		return 1
	}
	return days
}

package service

import (
	"testing"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestApplyGuestInputPartialUpdate(t *testing.T) {
	g := &model.Guest{
		Name:      "Asha Verma",
		Phone:     strPtr("+91-9000000000"),
		IsPremium: true,
		Notes:     strPtr("prefers ground floor"),
	}

	applyGuestInput(g, GuestInput{Phone: strPtr("+91-9111111111")})

	if *g.Phone != "+91-9111111111" {
		t.Errorf("phone = %q, want updated value", *g.Phone)
	}
	if g.Name != "Asha Verma" {
		t.Errorf("name = %q, want unchanged", g.Name)
	}
	if !g.IsPremium {
		t.Error("is_premium reset by an update that omitted it")
	}
	if g.Notes == nil || *g.Notes != "prefers ground floor" {
		t.Error("notes changed by an update that omitted them")
	}
}

func TestApplyGuestInputPremiumFlag(t *testing.T) {
	cases := []struct {
		name    string
		initial bool
		input   *bool
		want    bool
	}{
		{"omitted keeps true", true, nil, true},
		{"omitted keeps false", false, nil, false},
		{"explicit false clears", true, boolPtr(false), false},
		{"explicit true sets", false, boolPtr(true), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := &model.Guest{Name: "G", IsPremium: tc.initial}
			applyGuestInput(g, GuestInput{IsPremium: tc.input})
			if g.IsPremium != tc.want {
				t.Errorf("is_premium = %v, want %v", g.IsPremium, tc.want)
			}
		})
	}
}

func TestApplyGuestInputEmptyNameIgnored(t *testing.T) {
	g := &model.Guest{Name: "Asha Verma"}
	applyGuestInput(g, GuestInput{Name: "", Email: strPtr("asha@example.com")})
	if g.Name != "Asha Verma" {
		t.Errorf("name = %q, want unchanged on empty input", g.Name)
	}
	if g.Email == nil || *g.Email != "asha@example.com" {
		t.Error("email not applied")
	}
}

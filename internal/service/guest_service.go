package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/repository"
)

// GuestService is the guest ledger: identity, contact and document
// metadata for hotel guests. The booking engine reads guests through
// the repository and bumps last_seen itself; this service backs the
// guest endpoints.
type GuestService struct {
	guests   *repository.GuestRepo
	bookings *repository.BookingRepo
}

// NewGuestService constructs a GuestService.
func NewGuestService(guests *repository.GuestRepo, bookings *repository.BookingRepo) *GuestService {
	if guests == nil || bookings == nil {
		panic("nil repository passed to NewGuestService")
	}
	return &GuestService{guests: guests, bookings: bookings}
}

// GuestInput carries the writable guest fields. Nil means "leave as
// is" on update, so a PATCH omitting is_premium keeps the stored flag.
type GuestInput struct {
	Name      string  `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	IDType    *string `json:"id_type"`
	IDNumber  *string `json:"id_number"`
	IsPremium *bool   `json:"is_premium"`
	Notes     *string `json:"notes"`
}

// applyGuestInput copies the set fields of in onto g.
func applyGuestInput(g *model.Guest, in GuestInput) {
	if in.Name != "" {
		g.Name = in.Name
	}
	if in.Phone != nil {
		g.Phone = in.Phone
	}
	if in.Email != nil {
		g.Email = in.Email
	}
	if in.IDType != nil {
		g.IDType = in.IDType
	}
	if in.IDNumber != nil {
		g.IDNumber = in.IDNumber
	}
	if in.IsPremium != nil {
		g.IsPremium = *in.IsPremium
	}
	if in.Notes != nil {
		g.Notes = in.Notes
	}
}

// CreateGuest registers a new guest. Name is required.
func (s *GuestService) CreateGuest(ctx context.Context, in GuestInput) (*model.Guest, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("guest name is required: %w", repository.ErrBadRequest)
	}
	g := &model.Guest{}
	applyGuestInput(g, in)
	if err := s.guests.Create(ctx, g); err != nil {
		return nil, err
	}
	log.Printf("guest: created guest %d (%s)", g.ID, g.Name)
	return s.guests.GetByID(ctx, g.ID)
}

// GetGuest returns a guest by ID.
func (s *GuestService) GetGuest(ctx context.Context, id uint64) (*model.Guest, error) {
	return s.guests.GetByID(ctx, id)
}

// ListGuests returns guests ordered by recency, optionally filtered by
// a name search.
func (s *GuestService) ListGuests(ctx context.Context, search string, offset, limit int) ([]model.Guest, error) {
	return s.guests.List(ctx, search, offset, limit)
}

// UpdateGuest rewrites a guest's contact and document fields. Only
// set inputs are applied; name, when given, must not be empty.
func (s *GuestService) UpdateGuest(ctx context.Context, id uint64, in GuestInput) (*model.Guest, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyGuestInput(g, in)
	if err := s.guests.Update(ctx, g); err != nil {
		return nil, err
	}
	log.Printf("guest: updated guest %d", id)
	return s.guests.GetByID(ctx, id)
}

// DeleteGuest removes a guest. Guests with any booking on record are
// refused, so past invoices never lose their guest. The bookings table
// enforces the same rule with a RESTRICT foreign key.
func (s *GuestService) DeleteGuest(ctx context.Context, id uint64) error {
	if _, err := s.guests.GetByID(ctx, id); err != nil {
		return err
	}
	_, total, err := s.bookings.List(ctx, repository.BookingFilter{GuestID: &id, Limit: 1})
	if err != nil {
		return err
	}
	if total > 0 {
		return fmt.Errorf("guest %d has bookings on record: %w", id, repository.ErrConflict)
	}
	if err := s.guests.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("guest: deleted guest %d", id)
	return nil
}

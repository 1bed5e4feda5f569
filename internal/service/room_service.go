package service

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/repository"
)

// RoomService manages the room registry: administrative CRUD, seeding
// and occupancy reporting. Occupancy transitions themselves belong to
// the booking engine and are not exposed here.
type RoomService struct {
	rooms *repository.RoomRepo
}

// NewRoomService constructs a RoomService.
func NewRoomService(rooms *repository.RoomRepo) *RoomService {
	if rooms == nil {
		panic("nil repository passed to NewRoomService")
	}
	return &RoomService{rooms: rooms}
}

// CreateRoom registers a new room. The number must be unused, the type
// must be known and the nightly rate positive.
func (s *RoomService) CreateRoom(ctx context.Context, number uint64, roomType string, rate decimal.Decimal, notes *string) (*model.Room, error) {
	if !model.ValidRoomType(roomType) {
		return nil, fmt.Errorf("unknown room type %q: %w", roomType, repository.ErrBadRequest)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("rate per night must be positive: %w", repository.ErrBadRequest)
	}
	room := &model.Room{
		Number:       number,
		RoomType:     roomType,
		RatePerNight: rate,
		Notes:        notes,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	log.Printf("room: created room %d (%s)", number, roomType)
	return s.rooms.GetByNumber(ctx, number)
}

// GetRoom returns a room by number.
func (s *RoomService) GetRoom(ctx context.Context, number uint64) (*model.Room, error) {
	return s.rooms.GetByNumber(ctx, number)
}

// ListRooms returns rooms matching the optional filters plus the total
// match count.
func (s *RoomService) ListRooms(ctx context.Context, roomType *string, occupied *bool, offset, limit int) ([]model.Room, int, error) {
	if roomType != nil && !model.ValidRoomType(*roomType) {
		return nil, 0, fmt.Errorf("unknown room type %q: %w", *roomType, repository.ErrBadRequest)
	}
	rooms, err := s.rooms.List(ctx, roomType, occupied, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.rooms.Count(ctx, roomType, occupied)
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

// UpdateRoom rewrites a room's type, rate and notes.
func (s *RoomService) UpdateRoom(ctx context.Context, number uint64, roomType *string, rate *decimal.Decimal, notes *string) (*model.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if roomType != nil {
		if !model.ValidRoomType(*roomType) {
			return nil, fmt.Errorf("unknown room type %q: %w", *roomType, repository.ErrBadRequest)
		}
		room.RoomType = *roomType
	}
	if rate != nil {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate per night must be positive: %w", repository.ErrBadRequest)
		}
		room.RatePerNight = *rate
	}
	if notes != nil {
		room.Notes = notes
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	log.Printf("room: updated room %d", number)
	return s.rooms.GetByNumber(ctx, number)
}

// DeleteRoom removes a vacant room; occupied rooms are refused.
func (s *RoomService) DeleteRoom(ctx context.Context, number uint64) error {
	if err := s.rooms.Delete(ctx, number); err != nil {
		return err
	}
	log.Printf("room: deleted room %d", number)
	return nil
}

// seedPlan describes the default inventory created on first start.
var seedPlan = []struct {
	roomType string
	count    int
	rate     int64
}{
	{model.RoomTypeStandard, 10, 1000},
	{model.RoomTypePremium, 7, 1500},
	{model.RoomTypeSuite, 3, 2500},
}

// SeedRooms creates the default room inventory when the registry is
// empty: rooms numbered from 101, 10 Standard at 1000/night, 7 Premium
// at 1500 and 3 Suite at 2500. Returns the number of rooms created,
// zero when rooms already exist.
func (s *RoomService) SeedRooms(ctx context.Context) (int, error) {
	existing, err := s.rooms.Count(ctx, nil, nil)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		log.Printf("room: rooms already seeded, found %d", existing)
		return 0, nil
	}

	created := 0
	number := uint64(101)
	for _, plan := range seedPlan {
		rate := decimal.NewFromInt(plan.rate)
		for i := 0; i < plan.count; i++ {
			room := &model.Room{Number: number, RoomType: plan.roomType, RatePerNight: rate}
			if err := s.rooms.Create(ctx, room); err != nil {
				return created, err
			}
			created++
			number++
		}
	}
	log.Printf("room: seeded %d rooms", created)
	return created, nil
}

// TypeOccupancy is the occupancy breakdown of one room type.
type TypeOccupancy struct {
	Total         int     `json:"total"`
	Occupied      int     `json:"occupied"`
	Available     int     `json:"available"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// OccupancyStats is the whole-hotel occupancy report.
type OccupancyStats struct {
	TotalRooms     int                      `json:"total_rooms"`
	OccupiedRooms  int                      `json:"occupied_rooms"`
	AvailableRooms int                      `json:"available_rooms"`
	OccupancyRate  float64                  `json:"occupancy_rate"`
	ByType         map[string]TypeOccupancy `json:"by_type"`
}

// GetOccupancyStats computes the current occupancy report, overall and
// broken down by room type.
func (s *RoomService) GetOccupancyStats(ctx context.Context) (*OccupancyStats, error) {
	occupied := true
	total, err := s.rooms.Count(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	occ, err := s.rooms.Count(ctx, nil, &occupied)
	if err != nil {
		return nil, err
	}

	stats := &OccupancyStats{
		TotalRooms:     total,
		OccupiedRooms:  occ,
		AvailableRooms: total - occ,
		OccupancyRate:  OccupancyRate(occ, total),
		ByType:         make(map[string]TypeOccupancy, len(model.RoomTypes)),
	}
	for _, rt := range model.RoomTypes {
		rt := rt
		typeTotal, err := s.rooms.Count(ctx, &rt, nil)
		if err != nil {
			return nil, err
		}
		typeOcc, err := s.rooms.Count(ctx, &rt, &occupied)
		if err != nil {
			return nil, err
		}
		stats.ByType[rt] = TypeOccupancy{
			Total:         typeTotal,
			Occupied:      typeOcc,
			Available:     typeTotal - typeOcc,
			OccupancyRate: OccupancyRate(typeOcc, typeTotal),
		}
	}
	return stats, nil
}

// OccupancyRate returns occupied/total as a percentage rounded to two
// decimals, or 0 when there are no rooms.
func OccupancyRate(occupied, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(occupied) / float64(total) * 100
	return float64(int(rate*100+0.5)) / 100
}

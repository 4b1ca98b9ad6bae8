package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrStaffNotFound = errors.New("staff member not found")

// StaffStore — интерфейс хранилища мастеров (read-only для календаря).
// Реализуется repository.StaffRepository.
type StaffStore interface {
	List(ctx context.Context) ([]*model.Staff, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Staff, error)
}

type StaffService struct {
	store  StaffStore
	logger *zap.Logger
}

func NewStaffService(store StaffStore, logger *zap.Logger) *StaffService {
	return &StaffService{
		store:  store,
		logger: logger,
	}
}

// List возвращает всех мастеров салона
func (s *StaffService) List(ctx context.Context) ([]*model.Staff, error) {
	staff, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch staff: %w", err)
	}
	return staff, nil
}

// GetByID возвращает мастера по ID
func (s *StaffService) GetByID(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	staff, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

// NamesByID возвращает map ID -> имя для подписей на сетке
func (s *StaffService) NamesByID(ctx context.Context) (map[uuid.UUID]string, error) {
	staff, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(staff))
	for _, member := range staff {
		names[member.ID] = member.Name
	}
	return names, nil
}

package services

import (
	"context"
	"errors"

	"github.com/architeacher/device-inventory/internal/domain/model"
	"github.com/architeacher/device-inventory/internal/ports"
)

type DevicesService struct {
	repo ports.DeviceRepository
}

func NewDevicesService(repo ports.DeviceRepository) *DevicesService {
	return &DevicesService{repo: repo}
}

// CreateDevice checks the name before inserting so callers get a clean
// conflict message. The unique index remains the backstop: a concurrent
// create that slips past the pre-check still surfaces as a duplicate.
func (s *DevicesService) CreateDevice(ctx context.Context, name, ipAddress string, deviceType model.DeviceType, location string) (*model.Device, error) {
	_, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return nil, model.ErrDuplicateDevice
	}

	if !errors.Is(err, model.ErrDeviceNotFound) {
		return nil, err
	}

	device := model.NewDevice(name, ipAddress, deviceType, location)

	if err := s.repo.Create(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

func (s *DevicesService) GetDevice(ctx context.Context, name string) (*model.Device, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *DevicesService) ListDevices(ctx context.Context) ([]*model.Device, error) {
	return s.repo.List(ctx)
}

func (s *DevicesService) UpdateDevice(ctx context.Context, name, ipAddress string, deviceType model.DeviceType, location string) (*model.Device, error) {
	device, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	device.ApplyUpdate(ipAddress, deviceType, location)

	if err := s.repo.Update(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

func (s *DevicesService) DeleteDevice(ctx context.Context, name string) error {
	if _, err := s.repo.GetByName(ctx, name); err != nil {
		return err
	}

	return s.repo.Delete(ctx, name)
}

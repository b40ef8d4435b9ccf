// Package mocks provides hand-written test doubles for the service ports.
package mocks

import (
	"context"

	"github.com/architeacher/device-inventory/internal/domain/model"
)

// FakeDevicesService implements ports.DevicesService with overridable stubs.
// Calls without a stub succeed with zero values.
type FakeDevicesService struct {
	CreateDeviceStub func(ctx context.Context, name, ipAddress string, deviceType model.DeviceType, location string) (*model.Device, error)
	GetDeviceStub    func(ctx context.Context, name string) (*model.Device, error)
	ListDevicesStub  func(ctx context.Context) ([]*model.Device, error)
	UpdateDeviceStub func(ctx context.Context, name, ipAddress string, deviceType model.DeviceType, location string) (*model.Device, error)
	DeleteDeviceStub func(ctx context.Context, name string) error
}

func (f *FakeDevicesService) CreateDevice(ctx context.Context, name, ipAddress string, deviceType model.DeviceType, location string) (*model.Device, error) {
	if f.CreateDeviceStub != nil {
		return f.CreateDeviceStub(ctx, name, ipAddress, deviceType, location)
	}

	return model.NewDevice(name, ipAddress, deviceType, location), nil
}

func (f *FakeDevicesService) GetDevice(ctx context.Context, name string) (*model.Device, error) {
	if f.GetDeviceStub != nil {
		return f.GetDeviceStub(ctx, name)
	}

	return nil, model.ErrDeviceNotFound
}

func (f *FakeDevicesService) ListDevices(ctx context.Context) ([]*model.Device, error) {
	if f.ListDevicesStub != nil {
		return f.ListDevicesStub(ctx)
	}

	return []*model.Device{}, nil
}

func (f *FakeDevicesService) UpdateDevice(ctx context.Context, name, ipAddress string, deviceType model.DeviceType, location string) (*model.Device, error) {
	if f.UpdateDeviceStub != nil {
		return f.UpdateDeviceStub(ctx, name, ipAddress, deviceType, location)
	}

	return model.NewDevice(name, ipAddress, deviceType, location), nil
}

func (f *FakeDevicesService) DeleteDevice(ctx context.Context, name string) error {
	if f.DeleteDeviceStub != nil {
		return f.DeleteDeviceStub(ctx, name)
	}

	return nil
}

// FakeHealthChecker implements ports.DatabaseHealthChecker.
type FakeHealthChecker struct {
	PingStub func(ctx context.Context) error
}

func (f *FakeHealthChecker) Ping(ctx context.Context) error {
	if f.PingStub != nil {
		return f.PingStub(ctx)
	}

	return nil
}

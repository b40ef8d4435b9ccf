package ports

import (
	"context"

	"github.com/architeacher/device-inventory/internal/domain/model"
)

// DevicesService defines the interface for device business operations.
type DevicesService interface {
	// CreateDevice creates a new device; the device name must be free.
	CreateDevice(ctx context.Context, name, ipAddress string, deviceType model.DeviceType, location string) (*model.Device, error)

	// GetDevice retrieves a device by name.
	GetDevice(ctx context.Context, name string) (*model.Device, error)

	// ListDevices retrieves all devices.
	ListDevices(ctx context.Context) ([]*model.Device, error)

	// UpdateDevice replaces all fields except the name on an existing device.
	UpdateDevice(ctx context.Context, name, ipAddress string, deviceType model.DeviceType, location string) (*model.Device, error)

	// DeleteDevice deletes a device by name.
	DeleteDevice(ctx context.Context, name string) error
}

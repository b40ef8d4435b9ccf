package ports

import (
	"context"

	"github.com/architeacher/device-inventory/internal/domain/model"
)

// DeviceRepository defines the interface for device persistence operations.
type DeviceRepository interface {
	// Create stores a new device. Returns model.ErrDuplicateDevice when the
	// unique name index rejects the insert.
	Create(ctx context.Context, device *model.Device) error

	// GetByName retrieves a device by its unique name.
	GetByName(ctx context.Context, name string) (*model.Device, error)

	// List retrieves all devices in insertion order.
	List(ctx context.Context) ([]*model.Device, error)

	// Update replaces every field except the name on the matching device.
	Update(ctx context.Context, device *model.Device) error

	// Delete removes the device with the given name.
	Delete(ctx context.Context, name string) error
}

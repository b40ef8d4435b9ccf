package model

// Device is the inventory entity. Name is the natural key and is never
// changed after creation; updates replace the remaining fields only.
type Device struct {
	Name      string
	IPAddress string
	Type      DeviceType
	Location  string
}

func NewDevice(name, ipAddress string, deviceType DeviceType, location string) *Device {
	return &Device{
		Name:      name,
		IPAddress: ipAddress,
		Type:      deviceType,
		Location:  location,
	}
}

// ApplyUpdate replaces every field except Name.
func (d *Device) ApplyUpdate(ipAddress string, deviceType DeviceType, location string) {
	d.IPAddress = ipAddress
	d.Type = deviceType
	d.Location = location
}

package model

import "fmt"

type DeviceType string

// Device types are case-sensitive wire values.
const (
	DeviceTypeRouter DeviceType = "Router"
	DeviceTypeSwitch DeviceType = "Switch"
	DeviceTypeServer DeviceType = "Server"
)

func (t DeviceType) String() string {
	return string(t)
}

func (t DeviceType) IsValid() bool {
	switch t {
	case DeviceTypeRouter, DeviceTypeSwitch, DeviceTypeServer:
		return true
	default:
		return false
	}
}

func ParseDeviceType(s string) (DeviceType, error) {
	deviceType := DeviceType(s)
	if !deviceType.IsValid() {
		return "", fmt.Errorf("invalid device type: %s", s)
	}

	return deviceType, nil
}

func AllDeviceTypes() []DeviceType {
	return []DeviceType{DeviceTypeRouter, DeviceTypeSwitch, DeviceTypeServer}
}

package model

import (
	"fmt"
	"net/netip"
	"strings"
)

const (
	validationCodeRequired = "required"
	validationCodeInvalid  = "invalid"

	fieldName      = "name"
	fieldIPAddress = "ip_address"
	fieldType      = "type"
	fieldLocation  = "location"
)

type DeviceInput struct {
	Name      string
	IPAddress string
	Type      string
	Location  string
}

// ValidateCreate checks a create payload. All four fields are required;
// violations accumulate so every problem is reported in one pass.
func ValidateCreate(input DeviceInput) *ValidationErrors {
	verrs := NewValidationErrors()

	requireField(verrs, fieldName, input.Name)
	requireField(verrs, fieldIPAddress, input.IPAddress)
	requireField(verrs, fieldType, input.Type)
	requireField(verrs, fieldLocation, input.Location)

	validateTypeAndAddress(verrs, input.Type, input.IPAddress)

	return verrs
}

// ValidateUpdate checks an update payload. Name is excluded: it rides on the
// lookup key, never the body.
func ValidateUpdate(input DeviceInput) *ValidationErrors {
	verrs := NewValidationErrors()

	requireField(verrs, fieldIPAddress, input.IPAddress)
	requireField(verrs, fieldType, input.Type)
	requireField(verrs, fieldLocation, input.Location)

	validateTypeAndAddress(verrs, input.Type, input.IPAddress)

	return verrs
}

func requireField(verrs *ValidationErrors, field, value string) {
	if value == "" {
		verrs.Add(field, fmt.Sprintf("Missing required field: %s", field), validationCodeRequired)
	}
}

func validateTypeAndAddress(verrs *ValidationErrors, deviceType, ipAddress string) {
	if deviceType != "" && !DeviceType(deviceType).IsValid() {
		verrs.Add(
			fieldType,
			fmt.Sprintf("Field 'type' must be one of: %s", joinDeviceTypes()),
			validationCodeInvalid,
		)
	}

	if ipAddress != "" && !isIPv4(ipAddress) {
		verrs.Add(
			fieldIPAddress,
			"Field 'ip_address' must be a valid IPv4 address",
			validationCodeInvalid,
		)
	}
}

func isIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)

	return err == nil && addr.Is4()
}

func joinDeviceTypes() string {
	all := AllDeviceTypes()

	names := make([]string, 0, len(all))
	for _, t := range all {
		names = append(names, t.String())
	}

	return strings.Join(names, ", ")
}

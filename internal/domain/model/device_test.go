package model_test

import (
	"testing"

	"github.com/architeacher/device-inventory/internal/domain/model"
	"github.com/stretchr/testify/suite"
)

type DeviceTestSuite struct {
	suite.Suite
}

func TestDeviceTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DeviceTestSuite))
}

func (s *DeviceTestSuite) TestNewDevice() {
	s.T().Parallel()

	device := model.NewDevice("core-sw-01", "10.0.0.1", model.DeviceTypeSwitch, "fra-dc1")

	s.Require().Equal("core-sw-01", device.Name)
	s.Require().Equal("10.0.0.1", device.IPAddress)
	s.Require().Equal(model.DeviceTypeSwitch, device.Type)
	s.Require().Equal("fra-dc1", device.Location)
}

func (s *DeviceTestSuite) TestApplyUpdate() {
	s.T().Parallel()

	device := model.NewDevice("core-sw-01", "10.0.0.1", model.DeviceTypeSwitch, "fra-dc1")

	device.ApplyUpdate("10.0.0.2", model.DeviceTypeRouter, "ams-dc2")

	s.Require().Equal("core-sw-01", device.Name, "name must survive updates")
	s.Require().Equal("10.0.0.2", device.IPAddress)
	s.Require().Equal(model.DeviceTypeRouter, device.Type)
	s.Require().Equal("ams-dc2", device.Location)
}

func (s *DeviceTestSuite) TestParseDeviceType() {
	s.T().Parallel()

	cases := []struct {
		name    string
		input   string
		want    model.DeviceType
		wantErr bool
	}{
		{
			name:  "router",
			input: "Router",
			want:  model.DeviceTypeRouter,
		},
		{
			name:  "switch",
			input: "Switch",
			want:  model.DeviceTypeSwitch,
		},
		{
			name:  "server",
			input: "Server",
			want:  model.DeviceTypeServer,
		},
		{
			name:    "lowercase is rejected",
			input:   "router",
			wantErr: true,
		},
		{
			name:    "unknown type",
			input:   "Firewall",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, err := model.ParseDeviceType(tc.input)

			if tc.wantErr {
				s.Require().Error(err)

				return
			}

			s.Require().NoError(err)
			s.Require().Equal(tc.want, got)
		})
	}
}

func (s *DeviceTestSuite) TestAllDeviceTypes() {
	s.T().Parallel()

	all := model.AllDeviceTypes()

	s.Require().Len(all, 3)
	for _, deviceType := range all {
		s.Require().True(deviceType.IsValid())
	}
}

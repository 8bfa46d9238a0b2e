// Package devices finds wearables that can be paired with the app.
package devices

import (
	"context"
	"slices"
)

// Device is a wearable that reports readings.
type Device struct {
	ID   string
	Name string
}

// Discoverer lists the devices currently in range.
type Discoverer interface {
	Discover(ctx context.Context) ([]Device, error)
}

// DefaultDevices is the list StaticDiscoverer serves when none is given.
var DefaultDevices = []Device{
	{ID: "galaxy-watch-4", Name: "Samsung Galaxy Watch 4"},
	{ID: "mi-band-7", Name: "Xiaomi Mi Band 7"},
	{ID: "fitbit-charge-6", Name: "Fitbit Charge 6"},
}

// StaticDiscoverer always reports the same devices.
type StaticDiscoverer struct {
	devices []Device
}

// NewStaticDiscoverer returns a discoverer for devices, or for
// DefaultDevices when devices is empty.
func NewStaticDiscoverer(devices ...Device) *StaticDiscoverer {
	if len(devices) == 0 {
		devices = DefaultDevices
	}
	return &StaticDiscoverer{devices: slices.Clone(devices)}
}

func (d *StaticDiscoverer) Discover(ctx context.Context) ([]Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(d.devices), nil
}

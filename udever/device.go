package udever

import (
	"fmt"
	"strings"
)

// RootHubVendorID is the Linux Foundation vendor id assigned to virtual root
// hub controllers. Rules must never target it: a root hub is shared by every
// device on the bus.
const RootHubVendorID = "1d6b"

// Device represents one USB device node at discovery time. Instances are
// constructed fresh on each enumeration and are read-only afterwards.
type Device struct {
	VendorID     string `json:"vendorId"`
	ProductID    string `json:"productId"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Product      string `json:"product,omitempty"`
	BusPath      string `json:"busPath,omitempty"`
	IsRootHub    bool   `json:"isRootHub,omitempty"`
}

// NewDevice builds a Device from raw sysfs attribute values, normalizing the
// hex identifiers and deriving the root hub marker.
func NewDevice(vendorID, productID, manufacturer, product, busPath string) (Device, error) {
	vid, err := NormalizeHexID(vendorID)
	if err != nil {
		return Device{}, fmt.Errorf("vendor id %q: %w", vendorID, err)
	}
	pid, err := NormalizeHexID(productID)
	if err != nil {
		return Device{}, fmt.Errorf("product id %q: %w", productID, err)
	}

	return Device{
		VendorID:     vid,
		ProductID:    pid,
		Manufacturer: strings.TrimSpace(manufacturer),
		Product:      strings.TrimSpace(product),
		BusPath:      busPath,
		IsRootHub:    vid == RootHubVendorID,
	}, nil
}

// ParseDeviceID builds a Device directly from a "VID:PID" pair, the CLI
// shortcut that bypasses enumeration entirely.
func ParseDeviceID(id string) (Device, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 2 {
		return Device{}, fmt.Errorf("%w: %q is not of the form VID:PID", ErrInvalidDeviceID, id)
	}

	return NewDevice(parts[0], parts[1], "", "", "")
}

// NormalizeHexID validates a 16-bit hexadecimal identifier and returns its
// canonical zero-padded lowercase 4-digit form.
func NormalizeHexID(id string) (string, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" || len(id) > 4 {
		return "", ErrInvalidDeviceID
	}
	for _, c := range id {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", ErrInvalidDeviceID
		}
	}
	return strings.Repeat("0", 4-len(id)) + id, nil
}

// ID returns the canonical "vid:pid" form of the device identifiers.
func (d Device) ID() string {
	return d.VendorID + ":" + d.ProductID
}

// Label returns the human-readable name used for selection lists.
func (d Device) Label() string {
	name := strings.TrimSpace(d.Manufacturer + " " + d.Product)
	if name == "" {
		name = "(unnamed device)"
	}
	return fmt.Sprintf("%s [%s]", name, d.ID())
}

func (d Device) String() string {
	if d.BusPath == "" {
		return d.Label()
	}
	return fmt.Sprintf("%s @%s", d.Label(), d.BusPath)
}

package udever

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/udevtools/udever/internal/log"
)

// DefaultSysPath is the kernel-exposed USB device hierarchy.
const DefaultSysPath = "/sys/bus/usb/devices"

// Enumerator reads the live USB topology and produces Device records.
type Enumerator struct {
	// SysPath is the sysfs directory to scan; defaults to DefaultSysPath.
	SysPath string
}

// NewEnumerator creates an Enumerator over the standard sysfs hierarchy.
func NewEnumerator() *Enumerator {
	return &Enumerator{SysPath: DefaultSysPath}
}

// List returns all attached USB devices, freshly computed on each call.
// Root hubs and interface entries are excluded. The result is sorted by
// display label so the order is stable for a given bus state.
func (e *Enumerator) List() ([]Device, error) {
	sysPath := e.SysPath
	if sysPath == "" {
		sysPath = DefaultSysPath
	}

	entries, err := os.ReadDir(sysPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSysfsUnreadable, err)
	}

	var devices []Device
	var errs error
	for _, entry := range entries {
		path := filepath.Join(sysPath, entry.Name())

		vendorID, vOK := readAttribute(path, "idVendor")
		productID, pOK := readAttribute(path, "idProduct")
		if !vOK || !pOK {
			// interface nodes and endpoints have no id attributes
			continue
		}

		manufacturer, _ := readAttribute(path, "manufacturer")
		product, _ := readAttribute(path, "product")

		device, err := NewDevice(vendorID, productID, manufacturer, product, entry.Name())
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("device at %s: %w", entry.Name(), err))
			continue
		}
		if device.IsRootHub {
			log.Debugf("skipping root hub at %s", entry.Name())
			continue
		}

		devices = append(devices, device)
	}

	if len(devices) == 0 {
		if errs != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoDevices, errs)
		}
		return nil, ErrNoDevices
	}
	if errs != nil {
		log.Warnf("some usb devices could not be read: %v", errs)
	}

	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].Label() < devices[j].Label()
	})

	return devices, nil
}

// readAttribute reads a single sysfs attribute file, reporting whether the
// attribute exists and was readable.
func readAttribute(devicePath, name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(devicePath, name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

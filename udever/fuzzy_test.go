package udever

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Rank(t *testing.T) {
	stlink := Device{VendorID: "0483", ProductID: "3748", Manufacturer: "STMicroelectronics", Product: "ST-LINK/V2"}
	receiver := Device{VendorID: "046d", ProductID: "c52b", Manufacturer: "Logitech", Product: "USB Receiver"}
	keyboard := Device{VendorID: "04d9", ProductID: "0141", Manufacturer: "Holtek", Product: "USB Keyboard"}
	devices := []Device{receiver, stlink, keyboard}

	t.Run("hex query ranks the matching device first", func(t *testing.T) {
		matches := Rank(devices, "484")

		require.NotEmpty(t, matches)
		assert.Equal(t, stlink, matches[0].Device)
		for _, m := range matches[1:] {
			assert.Less(t, m.Score, matches[0].Score)
		}
	})

	t.Run("name query matches case-insensitively", func(t *testing.T) {
		matches := Rank(devices, "stlink")

		require.Len(t, matches, 1)
		assert.Equal(t, stlink, matches[0].Device)
	})

	t.Run("empty query keeps all devices in original order", func(t *testing.T) {
		matches := Rank(devices, "")

		require.Len(t, matches, len(devices))
		for i, m := range matches {
			assert.Equal(t, devices[i], m.Device)
			assert.Zero(t, m.Score)
		}
	})

	t.Run("non-matching query drops all devices", func(t *testing.T) {
		assert.Empty(t, Rank(devices, "xyzzy"))
	})

	t.Run("ties preserve enumeration order", func(t *testing.T) {
		a := Device{VendorID: "1111", ProductID: "0001", Product: "Widget"}
		b := Device{VendorID: "1111", ProductID: "0002", Product: "Widget"}

		matches := Rank([]Device{a, b}, "widget")

		require.Len(t, matches, 2)
		assert.Equal(t, a, matches[0].Device)
		assert.Equal(t, b, matches[1].Device)
	})

	t.Run("contiguous match outranks a scattered one", func(t *testing.T) {
		contiguous := Device{VendorID: "2222", ProductID: "0001", Product: "flash drive"}
		scattered := Device{VendorID: "2222", ProductID: "0002", Product: "f-l-a-s-h later"}

		matches := Rank([]Device{scattered, contiguous}, "flash")

		require.Len(t, matches, 2)
		assert.Equal(t, contiguous, matches[0].Device)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first := Rank(devices, "usb")
		second := Rank(devices, "usb")
		assert.Equal(t, first, second)
	})
}

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udevtools/udever/udever"
)

func Test_pickBestMatch(t *testing.T) {
	stlink := udever.Device{VendorID: "0483", ProductID: "3748", Manufacturer: "STMicroelectronics", Product: "ST-LINK/V2"}
	ftdiA := udever.Device{VendorID: "0403", ProductID: "6001", Manufacturer: "FTDI", Product: "FT232R USB UART"}
	ftdiB := udever.Device{VendorID: "0403", ProductID: "6015", Manufacturer: "FTDI", Product: "FT231X USB UART"}

	t.Run("clear winner is selected", func(t *testing.T) {
		matches := []udever.Match{
			{Device: stlink, Score: 120},
			{Device: ftdiA, Score: 40},
		}

		device, err := pickBestMatch(matches, "stlink")
		require.NoError(t, err)
		assert.Equal(t, stlink, device)
	})

	t.Run("tie at the top score is refused", func(t *testing.T) {
		matches := []udever.Match{
			{Device: ftdiA, Score: 80},
			{Device: ftdiB, Score: 80},
			{Device: stlink, Score: 10},
		}

		_, err := pickBestMatch(matches, "uart")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ftdiA.Label())
		assert.Contains(t, err.Error(), ftdiB.Label())
		assert.NotContains(t, err.Error(), stlink.Label())
	})

	t.Run("no match is an error", func(t *testing.T) {
		_, err := pickBestMatch(nil, "ghost")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})
}

func Test_selectDevice_idPath(t *testing.T) {
	t.Run("id and match are mutually exclusive", func(t *testing.T) {
		_, err := selectDevice("0483:3748", "stlink")
		assert.Error(t, err)
	})

	t.Run("id bypasses enumeration", func(t *testing.T) {
		device, err := selectDevice("0483:3748", "")
		require.NoError(t, err)
		assert.Equal(t, "0483:3748", device.ID())
	})

	t.Run("root hub id is rejected", func(t *testing.T) {
		_, err := selectDevice("1d6b:0002", "")
		assert.ErrorIs(t, err, udever.ErrRootHubTarget)
	})

	t.Run("neither flag is an error", func(t *testing.T) {
		_, err := selectDevice("", "")
		assert.Error(t, err)
	})
}

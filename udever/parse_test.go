package udever

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseRule_roundTrip(t *testing.T) {
	profile := Profile{DistroID: "arch", SerialGroup: GroupUUCP, Known: true}

	tests := []struct {
		name string
		spec RuleSpec
	}{
		{
			name: "uaccess without symlink",
			spec: RuleSpec{VendorID: "0483", ProductID: "3748", Policy: PolicyUserOnly},
		},
		{
			name: "group with symlink",
			spec: RuleSpec{VendorID: "16c0", ProductID: "05dc", Policy: PolicyGroupSerial, Symlink: "usbasp"},
		},
		{
			name: "everyone with symlink",
			spec: RuleSpec{VendorID: "1a86", ProductID: "7523", Policy: PolicyEveryone, Symlink: "ch340"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, err := Synthesize(tc.spec, profile)
			require.NoError(t, err)

			got, ok := ParseRule(text)
			require.True(t, ok, "synthesized rule should reverse-parse")

			assert.Equal(t, tc.spec.VendorID, got.VendorID)
			assert.Equal(t, tc.spec.ProductID, got.ProductID)
			assert.Equal(t, tc.spec.Policy, got.Policy)
			assert.Equal(t, tc.spec.Symlink, got.Symlink)
		})
	}
}

func Test_ParseRule_foreignText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "no device ids",
			text: `SUBSYSTEM=="usb", ACTION=="add", MODE="0666"`,
		},
		{
			name: "unmodeled permission form",
			text: `SUBSYSTEM=="usb", ACTION=="add", ATTRS{idVendor}=="0483", ATTRS{idProduct}=="3748", OWNER="nobody"`,
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ParseRule(tc.text)
			assert.False(t, ok)
		})
	}
}

package udever

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Validate(t *testing.T) {
	existingSpec := RuleSpec{VendorID: "16c0", ProductID: "05dc", Policy: PolicyUserOnly, Symlink: "usbasp"}
	existing := ManagedRuleSet{
		"99-usbasp.rules": RuleFile{
			Name: "99-usbasp.rules",
			Spec: &existingSpec,
		},
	}

	goodRule := `SUBSYSTEM=="usb", ACTION=="add", ATTRS{idVendor}=="0483", ATTRS{idProduct}=="3748", TAG+="uaccess"` + "\n"

	tests := []struct {
		name     string
		fileName string
		text     string
		wantErr  error
	}{
		{
			name:     "valid rule passes",
			fileName: "99-stlink.rules",
			text:     goodRule,
		},
		{
			name:     "empty text is malformed",
			fileName: "99-x.rules",
			text:     "   \n",
			wantErr:  ErrMalformedRule,
		},
		{
			name:     "unbalanced quotes are malformed",
			fileName: "99-x.rules",
			text:     `SUBSYSTEM=="usb", ACTION=="add", MODE="0666`,
			wantErr:  ErrMalformedRule,
		},
		{
			name:     "missing SUBSYSTEM is malformed",
			fileName: "99-x.rules",
			text:     `ACTION=="add", ATTRS{idVendor}=="0483", MODE="0666"`,
			wantErr:  ErrMalformedRule,
		},
		{
			name:     "missing ACTION is malformed",
			fileName: "99-x.rules",
			text:     `SUBSYSTEM=="usb", ATTRS{idVendor}=="0483", MODE="0666"`,
			wantErr:  ErrMalformedRule,
		},
		{
			name:     "root hub signature is rejected regardless of policy",
			fileName: "99-hub.rules",
			text:     `SUBSYSTEM=="usb", ACTION=="add", ATTRS{idVendor}=="1d6b", ATTRS{idProduct}=="0002", TAG+="uaccess"` + "\n",
			wantErr:  ErrRootHubTarget,
		},
		{
			name:     "root hub signature is rejected with mode 0666 too",
			fileName: "99-hub.rules",
			text:     `SUBSYSTEM=="usb", ACTION=="add", ATTRS{idVendor}=="1d6b", ATTRS{idProduct}=="0003", MODE="0666"` + "\n",
			wantErr:  ErrRootHubTarget,
		},
		{
			name:     "duplicate file name is rejected",
			fileName: "99-usbasp.rules",
			text:     goodRule,
			wantErr:  ErrDuplicateRuleName,
		},
		{
			name:     "duplicate symlink is rejected",
			fileName: "99-other.rules",
			text:     `SUBSYSTEM=="usb", ACTION=="add", ATTRS{idVendor}=="0483", ATTRS{idProduct}=="3748", TAG+="uaccess", SYMLINK+="usbasp"` + "\n",
			wantErr:  ErrDuplicateSymlink,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.fileName, tc.text, existing)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}

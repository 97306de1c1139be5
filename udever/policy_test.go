package udever

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{input: "uaccess", want: PolicyUserOnly},
		{input: "group", want: PolicyGroupSerial},
		{input: "everyone", want: PolicyEveryone},
		{input: "", wantErr: true},
		{input: "root", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePolicy(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_PolicyClause_closedSet(t *testing.T) {
	profile := Profile{SerialGroup: GroupDialout, Known: true}

	clause, err := Policy("chmod-777").Clause(profile)
	assert.True(t, errors.Is(err, ErrEmptyPolicy))
	assert.Empty(t, clause)
}

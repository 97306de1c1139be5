package udever

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_ResolveProfileFrom(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Profile
	}{
		{
			name:    "arch resolves to uucp",
			content: "NAME=\"Arch Linux\"\nID=arch\nBUILD_ID=rolling\n",
			want:    Profile{DistroID: "arch", SerialGroup: GroupUUCP, Known: true},
		},
		{
			name:    "manjaro resolves to uucp",
			content: "ID=manjaro\n",
			want:    Profile{DistroID: "manjaro", SerialGroup: GroupUUCP, Known: true},
		},
		{
			name:    "debian resolves to dialout",
			content: "ID=debian\n",
			want:    Profile{DistroID: "debian", SerialGroup: GroupDialout, Known: true},
		},
		{
			name:    "ubuntu with quoted values resolves to dialout",
			content: "NAME=\"Ubuntu\"\nID=\"ubuntu\"\nID_LIKE=debian\n",
			want:    Profile{DistroID: "ubuntu", SerialGroup: GroupDialout, Known: true},
		},
		{
			name:    "derivative is recognized via ID_LIKE",
			content: "ID=endeavouros\nID_LIKE=arch\n",
			want:    Profile{DistroID: "endeavouros", SerialGroup: GroupUUCP, Known: true},
		},
		{
			name:    "unknown distro falls back to dialout without Known",
			content: "ID=plan9\n",
			want:    Profile{DistroID: "plan9", SerialGroup: GroupDialout},
		},
		{
			name:    "empty file falls back to dialout",
			content: "",
			want:    Profile{SerialGroup: GroupDialout},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "os-release")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got := ResolveProfileFrom(path)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ResolveProfileFrom() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_ResolveProfileFrom_missingFile(t *testing.T) {
	got := ResolveProfileFrom(filepath.Join(t.TempDir(), "does-not-exist"))

	want := Profile{SerialGroup: GroupDialout}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolveProfileFrom() mismatch (-want +got):\n%s", diff)
	}
}

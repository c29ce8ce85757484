package version

import (
	"strings"
	"testing"
)

func TestGet_Defaults(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if Version == "dev" && info.IsRelease {
		t.Error("dev builds must not report IsRelease")
	}
}

func TestString_ContainsVersion(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, Version) {
		t.Errorf("String() = %q, want prefix %q", s, Version)
	}
}

func TestShortCommit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"3f2a91c", "3f2a91c"},
		{"3f2a91c8a7b612f", "3f2a91c"},
	}
	for _, tt := range tests {
		if got := shortCommit(tt.in); got != tt.want {
			t.Errorf("shortCommit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

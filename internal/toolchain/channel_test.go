package toolchain

import "testing"

func TestParseChannel(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   Channel
	}{
		{"nightly", "rustc 1.80.0-nightly (ab14f944a 2024-05-11)\nbinary: rustc\nrelease: 1.80.0-nightly\n", ChannelNightly},
		{"stable", "rustc 1.78.0 (9b00956e5 2024-04-29)\nrelease: 1.78.0\nLLVM version: 18.1.2\n", ChannelStable},
		{"beta", "release: 1.79.0-beta\n", ChannelBeta},
		{"numbered beta", "release: 1.79.0-beta.5\n", ChannelBeta},
		{"dev build", "release: 1.80.0-dev\n", ChannelUnknown},
		{"nightly prefix only", "release: 1.80.0-nightlyish\n", ChannelUnknown},
		{"missing release line", "rustc 1.78.0\nbinary: rustc\n", ChannelUnknown},
		{"empty release", "release:\n", ChannelUnknown},
		{"empty output", "", ChannelUnknown},
		{"windows line endings", "binary: rustc\r\nrelease: 1.80.0-nightly\r\n", ChannelNightly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseChannel(tt.output); got != tt.want {
				t.Errorf("ParseChannel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFamilyForGOOS(t *testing.T) {
	cases := map[string]Family{
		"linux":   FamilyUnix,
		"freebsd": FamilyUnix,
		"darwin":  FamilyMac,
		"windows": FamilyWindows,
	}
	for goos, want := range cases {
		if got := FamilyForGOOS(goos); got != want {
			t.Errorf("FamilyForGOOS(%q) = %v, want %v", goos, got, want)
		}
	}
}

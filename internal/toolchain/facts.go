// Package toolchain discovers the local Rust build accelerators: the rustc
// release channel, the sccache compilation cache, fast linkers and the C
// compiler used as link driver.
//
// Every input comes from an Environment so callers can substitute a fake
// one in tests. Probing never fails; anything that cannot be determined is
// reported as absent.
package toolchain

// Channel is the release channel of the active rustc.
type Channel int

const (
	ChannelUnknown Channel = iota
	ChannelStable
	ChannelBeta
	ChannelNightly
)

// String returns the channel name as rustup spells it.
func (c Channel) String() string {
	switch c {
	case ChannelStable:
		return "stable"
	case ChannelBeta:
		return "beta"
	case ChannelNightly:
		return "nightly"
	default:
		return "unknown"
	}
}

// Family groups host operating systems by the linker convention they use.
type Family int

const (
	FamilyUnix Family = iota
	FamilyMac
	FamilyWindows
)

func (f Family) String() string {
	switch f {
	case FamilyMac:
		return "mac"
	case FamilyWindows:
		return "windows"
	default:
		return "unix"
	}
}

// FamilyForGOOS maps a GOOS value to its platform family.
func FamilyForGOOS(goos string) Family {
	switch goos {
	case "darwin", "ios":
		return FamilyMac
	case "windows":
		return FamilyWindows
	default:
		return FamilyUnix
	}
}

// Facts is the discovered toolchain state. Empty paths mean "not found".
type Facts struct {
	Family         Family
	Channel        Channel
	CachePath      string
	FastLinkerPath string
	CCompilerPath  string
}

// UnixLinker returns the lld path when it was probed on a Unix host.
func (f Facts) UnixLinker() string {
	if f.Family != FamilyUnix {
		return ""
	}
	return f.FastLinkerPath
}

// MacLinker returns the zld path when it was probed on a Mac host.
func (f Facts) MacLinker() string {
	if f.Family != FamilyMac {
		return ""
	}
	return f.FastLinkerPath
}

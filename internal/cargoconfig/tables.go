package cargoconfig

// Platform is one of the target triples fleet configures.
type Platform int

const (
	LinuxGnu Platform = iota
	WindowsMsvc
	MacDarwin
)

// Platforms lists every Platform in document order.
var Platforms = []Platform{LinuxGnu, WindowsMsvc, MacDarwin}

// Triple returns the rustc target triple for p.
func (p Platform) Triple() string {
	switch p {
	case WindowsMsvc:
		return "x86_64-pc-windows-msvc"
	case MacDarwin:
		return "x86_64-apple-darwin"
	default:
		return "x86_64-unknown-linux-gnu"
	}
}

func (p Platform) String() string {
	return p.Triple()
}

const (
	flagShareGenerics  = "-Zshare-generics=y"
	flagUseLLD         = "-Clink-arg=-fuse-ld=lld"
	flagSplitDebuginfo = "-Csplit-debuginfo=unpacked"
	flagUseLinkerFmt   = "-Clink-arg=-fuse-ld=%s"
)

// PlatformFlags are the rustflags every target gets regardless of what the
// probe found.
var PlatformFlags = map[Platform][]string{
	LinuxGnu:    {flagUseLLD, flagShareGenerics},
	WindowsMsvc: {flagShareGenerics},
	MacDarwin:   {flagShareGenerics, flagSplitDebuginfo},
}

// Profile names.
const (
	ProfileDev     = "dev"
	ProfileRelease = "release"
)

// ProfileTable holds the fixed optimization presets.
var ProfileTable = map[string]ProfileValues{
	ProfileDev: {
		OptLevel:     0,
		Debug:        2,
		Incremental:  true,
		CodegenUnits: 512,
	},
	ProfileRelease: {
		OptLevel:     3,
		Debug:        0,
		Incremental:  false,
		CodegenUnits: 256,
	},
}

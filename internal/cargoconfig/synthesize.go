package cargoconfig

import (
	"fmt"

	"github.com/dimensionhq/fleet/internal/toolchain"
)

// Synthesize builds the configuration document for the probed facts.
func Synthesize(facts toolchain.Facts) *Document {
	doc := &Document{
		Build: Build{RustcWrapper: optional(facts.CachePath)},
		Profile: ProfileSet{
			Dev:     ProfileTable[ProfileDev],
			Release: ProfileTable[ProfileRelease],
		},
	}

	for _, p := range Platforms {
		target := doc.Target.For(p)
		target.Rustflags = append([]string(nil), PlatformFlags[p]...)
		target.Linker = optional(linkerFor(p, facts))
	}

	// zld is passed as a link argument; the Mac target keeps the default linker.
	if zld := facts.MacLinker(); zld != "" {
		doc.Target.Mac.Rustflags = append(doc.Target.Mac.Rustflags, fmt.Sprintf(flagUseLinkerFmt, zld))
	}

	return doc
}

func linkerFor(p Platform, facts toolchain.Facts) string {
	switch p {
	case LinuxGnu:
		return facts.CCompilerPath
	case WindowsMsvc:
		return facts.UnixLinker()
	default:
		return ""
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package toolchain

import (
	"log/slog"
	"path/filepath"
)

// Fixed install locations checked by the probe.
const (
	LLDPath   = "/usr/bin/lld"
	ClangPath = "/usr/bin/clang"
	ZLDPath   = "/usr/bin/zld"
)

// Prober inspects an Environment for toolchain accelerators.
type Prober struct {
	env    Environment
	logger *slog.Logger
}

// NewProber creates a prober over env. A nil logger discards output.
func NewProber(env Environment, logger *slog.Logger) *Prober {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Prober{env: env, logger: logger}
}

// Probe runs every check and returns the result. It never fails.
func (p *Prober) Probe() Facts {
	family := p.env.Family()
	facts := Facts{
		Family:    family,
		Channel:   p.channel(),
		CachePath: p.cachePath(family),
	}

	switch family {
	case FamilyUnix:
		facts.FastLinkerPath = p.existing(LLDPath)
		facts.CCompilerPath = p.existing(ClangPath)
	case FamilyMac:
		facts.FastLinkerPath = p.existing(ZLDPath)
	}

	p.logger.Debug("toolchain probed",
		"family", family.String(),
		"channel", facts.Channel.String(),
		"sccache", facts.CachePath,
		"linker", facts.FastLinkerPath,
		"cc", facts.CCompilerPath)

	return facts
}

func (p *Prober) channel() Channel {
	out, err := p.env.CompilerVersion()
	if err != nil {
		p.logger.Debug("compiler version query failed", "error", err)
		return ChannelUnknown
	}
	return ParseChannel(out)
}

// CacheToolPath returns where `cargo install sccache` puts the binary, or ""
// when the home directory cannot be resolved.
func CacheToolPath(env Environment, family Family) string {
	home, err := env.HomeDir()
	if err != nil || home == "" {
		return ""
	}
	name := "sccache"
	if family == FamilyWindows {
		name += ".exe"
	}
	return filepath.Join(home, ".cargo", "bin", name)
}

func (p *Prober) cachePath(family Family) string {
	path := CacheToolPath(p.env, family)
	if path == "" {
		return ""
	}
	return p.existing(path)
}

func (p *Prober) existing(path string) string {
	if p.env.Exists(path) {
		return path
	}
	return ""
}

package toolchain

// Requirement is one entry of the toolchain checklist together with the
// command that fixes it.
type Requirement struct {
	// Name is the tool or setting the user is missing.
	Name string
	// Problem is a format string with one %s verb for Name.
	Problem string
	// Remedy is the command the user should run.
	Remedy string
	// Met reports whether the requirement holds for the probed facts.
	Met func(Facts) bool
}

const (
	problemNotInstalled = "You have not installed %s"
	problemWrongChannel = "You are not using a %s compiler"
)

// Requirements returns the checklist for a platform family in report order:
// compiler channel, cache tool, then the family's linker checks.
func Requirements(family Family) []Requirement {
	reqs := []Requirement{
		{
			Name:    "nightly",
			Problem: problemWrongChannel,
			Remedy:  "rustup default nightly",
			Met:     func(f Facts) bool { return f.Channel == ChannelNightly },
		},
		{
			Name:    "sccache",
			Problem: problemNotInstalled,
			Remedy:  "cargo install sccache",
			Met:     func(f Facts) bool { return f.CachePath != "" },
		},
	}

	switch family {
	case FamilyUnix:
		reqs = append(reqs,
			Requirement{
				Name:    "lld",
				Problem: problemNotInstalled,
				Remedy:  "sudo apt install lld",
				Met:     func(f Facts) bool { return f.UnixLinker() != "" },
			},
			Requirement{
				Name:    "clang",
				Problem: problemNotInstalled,
				Remedy:  "sudo apt install clang",
				Met:     func(f Facts) bool { return f.CCompilerPath != "" },
			},
		)
	case FamilyMac:
		reqs = append(reqs, Requirement{
			Name:    "zld",
			Problem: problemNotInstalled,
			Remedy:  "brew install zld",
			Met:     func(f Facts) bool { return f.MacLinker() != "" },
		})
	}

	return reqs
}

// Unmet filters the checklist down to the requirements facts do not satisfy.
func Unmet(facts Facts) []Requirement {
	var missing []Requirement
	for _, req := range Requirements(facts.Family) {
		if !req.Met(facts) {
			missing = append(missing, req)
		}
	}
	return missing
}

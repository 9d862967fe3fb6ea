package toolchain

import (
	"bufio"
	"strings"
)

// ParseChannel extracts the release channel from `rustc -vV` output.
//
// The release line looks like "release: 1.78.0-nightly". A version without a
// pre-release suffix is stable; an unrecognised suffix or a missing release
// line yields ChannelUnknown.
func ParseChannel(versionOutput string) Channel {
	scanner := bufio.NewScanner(strings.NewReader(versionOutput))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		release, ok := strings.CutPrefix(line, "release:")
		if !ok {
			continue
		}
		release = strings.TrimSpace(release)
		if release == "" {
			return ChannelUnknown
		}
		_, pre, found := strings.Cut(release, "-")
		if !found {
			return ChannelStable
		}
		switch pre {
		case "nightly":
			return ChannelNightly
		case "beta":
			return ChannelBeta
		}
		// Numbered betas ("1.78.0-beta.3").
		if strings.HasPrefix(pre, "beta.") {
			return ChannelBeta
		}
		return ChannelUnknown
	}
	return ChannelUnknown
}

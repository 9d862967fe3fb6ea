// Package diagnostics explains a failed build.
//
// The Reporter re-probes the toolchain and prints one remediation hint per
// requirement that is currently unmet: the nightly compiler, sccache, and
// the platform's fast linker and C compiler. It is a checklist of what the
// environment lacks, not an analysis of why a particular build failed.
package diagnostics

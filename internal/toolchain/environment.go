package toolchain

import (
	"os"
	"os/exec"
	"runtime"
)

// Environment answers the questions the probe asks about the host.
type Environment interface {
	// HomeDir returns the user's home directory.
	HomeDir() (string, error)
	// Exists reports whether a filesystem entry exists at path.
	Exists(path string) bool
	// Family returns the platform family of the host.
	Family() Family
	// CompilerVersion returns the verbose version output of rustc.
	CompilerVersion() (string, error)
}

// OSEnvironment is the Environment of the running process.
type OSEnvironment struct {
	// Compiler is the rustc executable queried for its channel.
	Compiler string
}

// NewOSEnvironment returns an environment backed by the real host.
func NewOSEnvironment() *OSEnvironment {
	return &OSEnvironment{Compiler: "rustc"}
}

func (e *OSEnvironment) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (e *OSEnvironment) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (e *OSEnvironment) Family() Family {
	return FamilyForGOOS(runtime.GOOS)
}

func (e *OSEnvironment) CompilerVersion() (string, error) {
	// #nosec G204 -- compiler name comes from settings, not user input
	out, err := exec.Command(e.Compiler, "-vV").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

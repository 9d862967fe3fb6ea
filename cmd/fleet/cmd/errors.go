package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dimensionhq/fleet/internal/cargoconfig"
	"github.com/dimensionhq/fleet/internal/dispatch"
)

// reportError prints the user-facing message for a fatal error.
func reportError(w io.Writer, err error) {
	label := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Render("error")

	var (
		buildErr *dispatch.BuildFailedError
		startErr *dispatch.StartError
		writeErr *cargoconfig.WriteError
	)
	switch {
	case errors.Is(err, errHelpRequested):
		// Help was already printed.
	case errors.As(err, &buildErr):
		// cargo printed its own failure output and the checklist followed it.
	case errors.As(err, &startErr):
		fmt.Fprintf(w, "%s: %v\n", label, startErr)
		fmt.Fprintf(w, "Make sure %s is installed and on your PATH (https://rustup.rs).\n", startErr.Tool)
	case errors.As(err, &writeErr):
		fmt.Fprintf(w, "%s: %v\n", label, writeErr)
		fmt.Fprintln(w, "Check that the project directory is writable and try again.")
	case errors.Is(err, cargoconfig.ErrRender):
		fmt.Fprintf(w, "%s: %v\n", label, err)
		fmt.Fprintln(w, "This is a bug in fleet; please report it.")
	default:
		fmt.Fprintf(w, "%s: %v\n", label, err)
	}
}

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal on w.
// It falls back to the raw markdown when the terminal renderer fails.
func printMarkdown(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			_, err = fmt.Fprint(w, out)
			return err
		}
	}
	_, err = fmt.Fprint(w, md)
	return err
}

package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown with glamour's automatic style.
type GlamourRenderer struct{}

func (GlamourRenderer) Render(content string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

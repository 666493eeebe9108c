// Package tui provides the small interactive surface of the nucent CLI:
// terminal detection and confirmation prompts.
package tui

import (
	"github.com/charmbracelet/huh"
)

// Confirm shows a yes/no prompt and returns the user's choice.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

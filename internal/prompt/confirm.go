// SPDX-License-Identifier: MPL-2.0

// Package prompt provides interactive terminal prompts for rwsup commands.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user cancels a prompt with Ctrl+C.
var ErrAborted = errors.New("aborted by user")

// Terminal asks questions on the controlling terminal via promptui.
// The zero value is ready to use.
type Terminal struct{}

// Confirm prompts the user for yes/no confirmation.
// Empty input selects the default answer; for the launcher prompts the
// default is always "no", matching the legacy run scripts.
// Returns ErrAborted if the user presses Ctrl+C.
func (Terminal) Confirm(label string, defaultYes bool) (bool, error) {
	defaultStr := "y/N"
	if defaultYes {
		defaultStr = "Y/n"
	}

	p := promptui.Prompt{
		Label:     fmt.Sprintf("%s [%s]", label, defaultStr),
		IsConfirm: true,
	}

	result, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return false, ErrAborted
		}
		// promptui reports "n" (and anything non-affirmative) as ErrAbort.
		if errors.Is(err, promptui.ErrAbort) {
			if strings.TrimSpace(result) == "" {
				return defaultYes, nil
			}
			return false, nil
		}
		return false, err
	}

	return IsAffirmative(result), nil
}

// IsAffirmative reports whether input is a "yes" answer.
func IsAffirmative(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// SPDX-License-Identifier: MPL-2.0

package prompt

import "testing"

func TestIsAffirmative(t *testing.T) {
	affirmative := []string{"y", "Y", "yes", "YES", "  yes  "}
	for _, input := range affirmative {
		if !IsAffirmative(input) {
			t.Errorf("Expected %q to be affirmative", input)
		}
	}

	negative := []string{"", "n", "no", "nope", "maybe", "ye"}
	for _, input := range negative {
		if IsAffirmative(input) {
			t.Errorf("Expected %q to not be affirmative", input)
		}
	}
}

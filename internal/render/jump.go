package render

import (
	"fmt"
	"strings"
	"unicode"
)

// ActivateJumpMode assigns each open tab a letter from the configured
// alphabet, preferring the first letter of the tab's label when unclaimed,
// and renders letters in place of icons until a jump is made.
func (r *Renderer) ActivateJumpMode() {
	letters := make(map[int]rune, r.tabs.Len())
	claimed := make(map[rune]bool, r.tabs.Len())

	tabs := r.tabs.List()
	for _, t := range tabs {
		for _, first := range strings.ToLower(t.Label) {
			if strings.ContainsRune(r.jumpAlphabet, first) && !claimed[first] {
				letters[t.Handle] = first
				claimed[first] = true
			}
			break
		}
	}
	for _, t := range tabs {
		if _, ok := letters[t.Handle]; ok {
			continue
		}
		for _, letter := range r.jumpAlphabet {
			if !claimed[letter] {
				letters[t.Handle] = letter
				claimed[letter] = true
				break
			}
		}
	}

	r.jumpMode = true
	r.jumpLetters = letters
}

// DeactivateJumpMode leaves jump mode without jumping.
func (r *Renderer) DeactivateJumpMode() {
	r.jumpMode = false
	r.jumpLetters = nil
}

// JumpMode reports whether jump mode is active.
func (r *Renderer) JumpMode() bool {
	return r.jumpMode
}

// JumpTo leaves jump mode and makes the tab assigned the letter current. A
// letter no tab holds is reported as a recoverable warning; tab state is
// unaffected.
func (r *Renderer) JumpTo(letter rune) error {
	defer r.DeactivateJumpMode()

	letter = unicode.ToLower(letter)
	for handle, assigned := range r.jumpLetters {
		if assigned == letter {
			return r.tabs.SetCurrent(handle)
		}
	}
	return fmt.Errorf("no tab assigned letter %q", letter)
}

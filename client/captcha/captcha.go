// Package captcha implements the booking form's challenge widget: a random
// 6-character string the devotee must retype before the form will submit.
package captcha

import (
	"math/rand"
	"strings"
)

// Alphabet excludes visually ambiguous characters (0/O, 1/l/I).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const challengeLength = 6

type Widget struct {
	challenge string
	verified  bool
	onVerify  func(bool)
}

// New generates the first challenge and reports unverified to the parent.
func New(onVerify func(bool)) *Widget {
	w := &Widget{onVerify: onVerify}
	w.Regenerate()
	return w
}

func (w *Widget) Challenge() string {
	return w.challenge
}

func (w *Widget) Verified() bool {
	return w.verified
}

// Regenerate draws a fresh challenge and resets the verified signal.
func (w *Widget) Regenerate() {
	chars := make([]byte, challengeLength)
	for i := range chars {
		chars[i] = Alphabet[rand.Intn(len(Alphabet))]
	}
	w.challenge = string(chars)
	w.verified = false
	if w.onVerify != nil {
		w.onVerify(false)
	}
}

// Verify compares input against the challenge case-insensitively. A mismatch
// immediately regenerates; there is no retry budget, only fresh attempts.
func (w *Widget) Verify(input string) bool {
	if strings.EqualFold(strings.TrimSpace(input), w.challenge) {
		w.verified = true
		if w.onVerify != nil {
			w.onVerify(true)
		}
		return true
	}
	w.Regenerate()
	return false
}

package usecase

import (
	"fmt"
	"math/rand/v2"
	"regexp"
)

var colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// randomColor returns a badge color like #3FA2C0.
func randomColor() string {
	return fmt.Sprintf("#%06X", rand.IntN(1<<24))
}

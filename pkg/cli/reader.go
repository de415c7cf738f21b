// Package cli provides the interactive terminal helpers cmd/play uses: a
// line reader and a set of printing helpers, plus a plain-text game log
// format for replay and analysis.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hearts-mc/engine/pkg/cards"
)

// Reader wraps stdin with the prompt/parse helpers the play loop needs.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader() *Reader {
	return &Reader{scanner: bufio.NewScanner(os.Stdin)}
}

func (r *Reader) ReadLine(prompt string) string {
	fmt.Print(prompt)
	if r.scanner.Scan() {
		return strings.TrimSpace(r.scanner.Text())
	}
	return ""
}

func (r *Reader) ReadInt(prompt string) (int, error) {
	s := r.ReadLine(prompt)
	return strconv.Atoi(strings.TrimSpace(s))
}

func (r *Reader) ReadCard(prompt string) (cards.Card, error) {
	s := r.ReadLine(prompt)
	return cards.ParseCard(s)
}

func (r *Reader) ReadCards(prompt string) ([]cards.Card, error) {
	s := r.ReadLine(prompt)
	return cards.ParseCards(s)
}

func (r *Reader) ReadYesNo(prompt string) bool {
	s := strings.ToLower(r.ReadLine(prompt + " (y/n): "))
	return s == "y" || s == "yes"
}

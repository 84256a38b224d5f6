// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/thoreinstein/tunedeck/internal/errors"
)

// ErrCancelled is returned when input ends before an answer is given.
var ErrCancelled = errors.New("prompt cancelled")

// Confirmer asks yes/no questions.
type Confirmer struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewConfirmer creates a Confirmer reading answers from r and writing
// questions to w.
func NewConfirmer(r io.Reader, w io.Writer) *Confirmer {
	return &Confirmer{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Confirm prints question and reads an answer. An empty answer selects def.
// Answers other than y/yes/n/no are asked again.
//
// Returns ErrCancelled if input ends (e.g., Ctrl+D).
func (c *Confirmer) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprintf(c.writer, "%s %s: ", question, hint)

		input, err := c.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || input == "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.writer)
				return false, ErrCancelled
			}
			return false, errors.Wrap(err, "reading answer")
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			return false, ErrCancelled
		}
		fmt.Fprintln(c.writer, "Please answer y or n.")
	}
}

/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// StdioDialogue implements the OptionDialogue and InputDialogue interfaces
// using standard input/output.
type StdioDialogue struct {
	in  *bufio.Reader
	out io.Writer
	// readSecret is swappable so tests don't need a TTY.
	readSecret func() (string, error)
}

func NewStdioDialogue() *StdioDialogue {
	return &StdioDialogue{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		readSecret: func() (string, error) {
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			if err != nil {
				return "", err
			}
			return string(raw), nil
		},
	}
}

// SelectOption presents choices on stdout and reads the selection from
// stdin. Separator options render as headings and cannot be chosen; the
// active option is marked. Entering an empty line dismisses the dialogue.
func (s *StdioDialogue) SelectOption(userPrompt string,
	choices []Option) (*Option, error) {

	selectable := make([]int, 0, len(choices))
	for i, choice := range choices {
		if !choice.Separator {
			selectable = append(selectable, i)
		}
	}
	if len(selectable) == 0 {
		return nil, fmt.Errorf("no choices provided")
	}

	fmt.Fprintln(s.out, userPrompt)
	num := 0
	for _, choice := range choices {
		if choice.Separator {
			fmt.Fprintf(s.out, "--- %s ---\n", choice.Label)
			continue
		}
		num++
		marker := " "
		if choice.Active {
			marker = "*"
		}
		if choice.Hint != "" {
			fmt.Fprintf(s.out, "%s%d) %s (%s)\n", marker, num, choice.Label,
				choice.Hint)
		} else {
			fmt.Fprintf(s.out, "%s%d) %s\n", marker, num, choice.Label)
		}
	}
	fmt.Fprint(s.out, "Enter choice number (empty to cancel): ")

	for {
		line, err := s.in.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil, nil
		}

		idx, convErr := strconv.Atoi(line)
		if convErr != nil || idx < 1 || idx > len(selectable) {
			fmt.Fprintf(s.out,
				"Invalid selection. Please enter a number between 1 and %d: ",
				len(selectable))
			continue
		}

		chosen := choices[selectable[idx-1]]
		return &chosen, nil
	}
}

// Get prompts for a line of input. An empty line dismisses the prompt.
func (s *StdioDialogue) Get(userPrompt string) (string, bool, error) {
	fmt.Fprintf(s.out, "%s: ", userPrompt)
	line, err := s.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		if err == io.EOF {
			return "", false, nil
		}
		return "", false, err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", false, nil
	}

	return line, true, nil
}

// GetSecret prompts for a line of input without echoing it back. The
// validate callback is re-run until it returns an empty message; an empty
// entry dismisses the prompt.
func (s *StdioDialogue) GetSecret(userPrompt string,
	validate func(string) string) (string, bool, error) {

	for {
		fmt.Fprintf(s.out, "%s (input hidden, empty to cancel): ", userPrompt)
		line, err := s.readSecret()
		fmt.Fprintln(s.out)
		if err != nil {
			return "", false, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return "", false, nil
		}
		if validate != nil {
			if msg := validate(line); msg != "" {
				fmt.Fprintln(s.out, msg)
				continue
			}
		}

		return line, true, nil
	}
}

package huhforms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/huh/v2"
)

var errPageRange = errors.New("page out of range")

// ParsePage turns the 1-based page typed by the user into a 0-based index
func ParsePage(input string, pageCount int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", input)
	}
	if n < 1 || n > pageCount {
		return 0, fmt.Errorf("%w: 1-%d", errPageRange, pageCount)
	}
	return n - 1, nil
}

// CreateJumpForm creates a huh form asking for a page number of a column
func CreateJumpForm(label string, pageCount int, page *string) *huh.Form {
	field := huh.NewInput().
		Key("page").
		Title(fmt.Sprintf("Jump to page in %s", label)).
		Description(fmt.Sprintf("1 - %d", pageCount)).
		Placeholder("page number").
		Validate(func(s string) error {
			_, err := ParsePage(s, pageCount)
			return err
		}).
		Value(page)

	return huh.NewForm(huh.NewGroup(field)).WithShowHelp(false)
}

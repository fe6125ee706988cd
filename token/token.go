// SPDX-License-Identifier: MIT
//
// Package token turns comma-separated user text such as "1, 2, null, 4"
// into the []tree.Slot sequence consumed by tree.Build.
//
// Rules:
//   - Tokens are split on ',' and trimmed.
//   - "null" (any case) is the absent marker.
//   - Every other token must parse as a finite number.
//   - The first token (the root) must be a number, not "null".
//
// All errors wrap tree.ErrInvalidInput, so callers may branch on that alone.
package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvltree/tree"
)

// Null is the textual absent marker.
const Null = "null"

// Separator splits tokens.
const Separator = ","

var (
	// ErrRootNotNumber indicates the first token is empty, "null" or not numeric.
	ErrRootNotNumber = fmt.Errorf("%w: the first element (root) must be a valid number", tree.ErrInvalidInput)

	// ErrBadToken indicates a later token is neither "null" nor a number.
	ErrBadToken = fmt.Errorf("%w: token is not %q or a number", tree.ErrInvalidInput, Null)
)

// Parse converts text into a slot sequence.
//
// Errors:
//   - ErrRootNotNumber for an empty input or a non-numeric first token.
//   - ErrBadToken with the 1-based token position for any other bad token.
//
// Complexity: O(len(s)).
func Parse(s string) ([]tree.Slot, error) {
	raw := strings.Split(s, Separator)
	seq := make([]tree.Slot, len(raw))
	for i, tok := range raw {
		slot, err := parseOne(strings.TrimSpace(tok))
		if err != nil {
			if i == 0 {
				return nil, ErrRootNotNumber
			}
			return nil, tokenErrorf(i, tok, err)
		}
		seq[i] = slot
	}
	if !seq[0].Present {
		return nil, ErrRootNotNumber
	}

	return seq, nil
}

// Format renders seq back into "1, 2, null" text. Parse(Format(seq))
// reproduces seq for any sequence with a present first element.
func Format(seq []tree.Slot) string {
	parts := make([]string, len(seq))
	for i, s := range seq {
		if !s.Present {
			parts[i] = Null
			continue
		}
		parts[i] = strconv.FormatFloat(s.Value, 'g', -1, 64)
	}

	return strings.Join(parts, Separator+" ")
}

// FormatValues renders traversal output as "1, 2, 3".
func FormatValues(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, Separator+" ")
}

var errNotFinite = errors.New("not a finite number")

func parseOne(tok string) (tree.Slot, error) {
	if strings.EqualFold(tok, Null) {
		return tree.Absent(), nil
	}
	if tok == "" {
		return tree.Slot{}, errors.New("empty token")
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return tree.Slot{}, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return tree.Slot{}, errNotFinite
	}

	return tree.Val(v), nil
}

// tokenErrorf reports a bad token by its 1-based position.
func tokenErrorf(i int, tok string, cause error) error {
	return fmt.Errorf("%w: token #%d (%q): %v", ErrBadToken, i+1, strings.TrimSpace(tok), cause)
}

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a 0-based vertex index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z" for idx in [0,25] and panics otherwise.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// LowerSymbolIDFn returns "a".."z" for idx in [0,25] and panics otherwise.
func LowerSymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("LowerSymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('a' + idx))
}

// OneBasedIDFn returns decimal IDs starting at "1".
func OneBasedIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// SymbolNumberIDFn returns prefix followed by the decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs names vertices "A".."Z".
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithSymbNumb names vertices prefix0, prefix1, ...
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// NameFn generates a username from its zero‐based index.
// It must be pure: the same idx always yields the same name, and distinct
// indices must yield names that differ after case folding.
type NameFn func(idx int) string

// DefaultPrefix is the prefix of the default name scheme.
const DefaultPrefix = "user"

// PrefixedName returns prefix + decimal index, e.g. "user0", "user1", ...
// Panics if idx < 0.
func PrefixedName(prefix string) NameFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedName: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnName returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx).
// Panics if idx < 0.
func ExcelColumnName(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnName: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithPrefixedNames sets the name scheme to PrefixedName(prefix).
func WithPrefixedNames(prefix string) BuilderOption {
	return WithNameScheme(PrefixedName(prefix))
}

// WithExcelNames sets the name scheme to ExcelColumnName.
func WithExcelNames() BuilderOption {
	return WithNameScheme(ExcelColumnName)
}

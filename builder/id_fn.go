// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// id_fn.go - vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn yields "0", "1", "2", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnIDFn yields "A".."Z", "AA", "AB", ... Panics on idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn yields prefix+"0", prefix+"1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbNumb uses SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithExcelColumnIDs uses ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

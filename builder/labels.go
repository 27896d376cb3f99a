// SPDX-License-Identifier: MIT
// Package: lvldiagram/builder
//
// labels.go - deterministic vertex label schemes.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// LabelFn turns a zero-based vertex index into its label. It must be pure.
type LabelFn func(idx int) string

// DecimalLabel returns idx in base 10: 0→"0", 42→"42".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabel returns the uppercase Latin letter for idx in [0,25].
// Panics outside that range.
func SymbolLabel(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolLabel: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// AlphanumericLabel returns idx in base 36: 10→"a", 36→"10". Panics if idx < 0.
func AlphanumericLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericLabel: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnLabel returns spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabel: idx must be ≥ 0, got %d", idx))
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

// HexLabel returns idx in lowercase hexadecimal. Panics if idx < 0.
func HexLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexLabel: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixLabel returns a scheme producing prefix + decimal index ("v0", "v1", ...).
func PrefixLabel(prefix string) LabelFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixLabel: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// LabelSchemeByName resolves a scheme from its configuration name:
// "decimal" (or ""), "symbol", "excel", "alnum", "hex", or "prefix:<p>".
func LabelSchemeByName(name string) (LabelFn, error) {
	switch name {
	case "", "decimal":
		return DecimalLabel, nil
	case "symbol":
		return SymbolLabel, nil
	case "excel":
		return ExcelColumnLabel, nil
	case "alnum":
		return AlphanumericLabel, nil
	case "hex":
		return HexLabel, nil
	}
	if p, ok := strings.CutPrefix(name, "prefix:"); ok {
		return PrefixLabel(p), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLabelScheme, name)
}

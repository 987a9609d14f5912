/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import (
	"fmt"
	"strconv"

	"github.com/intel/rsp-sw-toolkit-im-suite-gtin/digits"
	"github.com/pkg/errors"
)

// MaxDigits is the digit count of the longest supported format, GTIN-14.
const MaxDigits = 14

// Format identifies one of the supported GTIN encodings.
type Format int

const (
	UPCE Format = iota
	UPCA
	EAN8
	EAN13
	GTIN14
)

// NumDigits returns the digit count of codes in this format, including the
// check digit.
func (f Format) NumDigits() int {
	switch f {
	case UPCE, EAN8:
		return 8
	case UPCA:
		return 12
	case EAN13:
		return 13
	case GTIN14:
		return 14
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case UPCE:
		return "UPC-E"
	case UPCA:
		return "UPC-A"
	case EAN8:
		return "EAN-8"
	case EAN13:
		return "EAN-13"
	case GTIN14:
		return "GTIN-14"
	}
	return "Unknown format: " + strconv.Itoa(int(f))
}

var (
	// ErrChecksum indicates the final digit of a sequence does not match the
	// GS1 mod-10 check digit computed over the preceding digits.
	ErrChecksum = errors.New("invalid GTIN checksum")

	// ErrConversion indicates a conversion between GTIN formats failed, e.g.
	// a UPC-E core with an unsupported length.
	ErrConversion = errors.New("GTIN conversion failed")
)

// LengthError reports a digit count outside the supported GTIN lengths.
// Use errors.Cause to recover it from wrapped errors.
type LengthError int

func (e LengthError) Error() string {
	return fmt.Sprintf("unsupported GTIN length: %d", int(e))
}

// GTIN is a Global Trade Item Number in one of the five supported formats.
//
// A GTIN holds its digits as numeric values 0-9 in a fixed buffer, tagged with
// its Format; its final digit always satisfies the GS1 check-digit invariant.
// GTINs are immutable values: two are equal (with ==) exactly when their
// format and digits are equal. Construct them with Parse, ParseUPCE,
// ParseEAN8, ExpandUPCE, or New; a zero GTIN is "00000000" in UPC-E form.
type GTIN struct {
	format Format
	buf    [MaxDigits]byte
}

// newUnchecked wraps digits known to hold the format and checksum invariants.
func newUnchecked(format Format, seq []byte) GTIN {
	g := GTIN{format: format}
	copy(g.buf[:], seq)
	return g
}

// New returns a GTIN of the given format built from an already-assembled digit
// sequence (numeric values 0-9, check digit included). It enforces the
// format's exact length, the digit value range, and the check-digit invariant,
// so the returned GTIN is indistinguishable from a parsed one.
func New(format Format, seq []byte) (GTIN, error) {
	if len(seq) != format.NumDigits() {
		return GTIN{}, errors.Wrapf(LengthError(len(seq)),
			"%s codes have %d digits", format, format.NumDigits())
	}
	for i, d := range seq {
		if d > 9 {
			return GTIN{}, errors.Errorf(
				"digits must be values in [0,9], but digit %d is %d", i, d)
		}
	}
	if !digits.Validate(seq) {
		return GTIN{}, ErrChecksum
	}
	return newUnchecked(format, seq), nil
}

// Parse extracts the decimal digits from text, discarding separators and any
// other non-digit characters, and classifies them as a GTIN.
//
// It fails with a LengthError if the digit count is outside [8,14] and with
// ErrChecksum if the final digit fails the mod-10 check. Classification is by
// digit count: 12 is UPC-A, 13 is EAN-13, 14 is GTIN-14. Two repairs apply:
// 11 digits are treated as a UPC-A whose leading zero was stripped by another
// system, and an EAN-13 with a leading 0 is collapsed to the equivalent UPC-A
// so zero-padded UPC-A codes round-trip to their original format.
//
// 8 digits are ambiguous: UPC-E and EAN-8 share the length and checksum
// structure, so the raw digits carry no structural marker. Parse resolves the
// ambiguity by the leading digit -- UPC-E codes always carry number system 0,
// so a leading 0 is classified UPC-E and anything else EAN-8. When the
// symbology is known, use ParseUPCE or ParseEAN8 instead of the heuristic.
func Parse(text string) (GTIN, error) {
	seq := digits.Extract(text)
	if !digits.Validate(seq) {
		if len(seq) < 8 || len(seq) > 14 {
			return GTIN{}, LengthError(len(seq))
		}
		return GTIN{}, ErrChecksum
	}

	switch len(seq) {
	case 8:
		if seq[0] != 0 {
			return newUnchecked(EAN8, seq), nil
		}
		return newUnchecked(UPCE, seq), nil
	case 11:
		// a leading 0 contributes nothing to the weighted sum, so the
		// repaired sequence is still checksum-valid
		return newUnchecked(UPCA, append([]byte{0}, seq...)), nil
	case 12:
		return newUnchecked(UPCA, seq), nil
	case 13:
		if seq[0] == 0 {
			return newUnchecked(UPCA, seq[1:]), nil
		}
		return newUnchecked(EAN13, seq), nil
	case 14:
		return newUnchecked(GTIN14, seq), nil
	}
	return GTIN{}, LengthError(len(seq))
}

// ParseUPCE parses text as a UPC-E, bypassing the 8-digit UPC-E/EAN-8
// heuristic in Parse. The extracted digits must number exactly 8 and satisfy
// the check-digit invariant.
func ParseUPCE(text string) (GTIN, error) {
	return parseExact(UPCE, text)
}

// ParseEAN8 parses text as an EAN-8, bypassing the 8-digit UPC-E/EAN-8
// heuristic in Parse. The extracted digits must number exactly 8 and satisfy
// the check-digit invariant.
func ParseEAN8(text string) (GTIN, error) {
	return parseExact(EAN8, text)
}

func parseExact(format Format, text string) (GTIN, error) {
	seq := digits.Extract(text)
	if len(seq) != format.NumDigits() {
		return GTIN{}, LengthError(len(seq))
	}
	if !digits.Validate(seq) {
		return GTIN{}, ErrChecksum
	}
	return newUnchecked(format, seq), nil
}

// Format returns the GTIN's format.
func (g GTIN) Format() Format {
	return g.format
}

// NumDigits returns the GTIN's digit count; always in [8, 14].
func (g GTIN) NumDigits() int {
	return g.format.NumDigits()
}

// Digits returns a copy of the GTIN's digits as numeric values 0-9, check
// digit included.
func (g GTIN) Digits() []byte {
	seq := make([]byte, g.format.NumDigits())
	copy(seq, g.buf[:])
	return seq
}

// String returns the canonical text form: the digits concatenated with no
// separators, e.g. "071720539774".
func (g GTIN) String() string {
	return digits.String(g.buf[:g.format.NumDigits()])
}

// AsEAN13 returns the EAN-13 holding the same item number, if one exists:
// an EAN-13 is returned as-is, a UPC-A is zero-padded, and a UPC-E is
// expanded to its UPC-A and then padded. EAN-8 and GTIN-14 are structurally
// incompatible with EAN-13 (the mapping would lose data), so ok is false.
func (g GTIN) AsEAN13() (ean13 GTIN, ok bool) {
	switch g.format {
	case EAN13:
		return g, true
	case UPCA:
		return newUnchecked(EAN13, append([]byte{0}, g.Digits()...)), true
	case UPCE:
		upca, err := ExpandUPCE(g.Digits())
		if err != nil {
			return GTIN{}, false
		}
		return newUnchecked(EAN13, append([]byte{0}, upca.Digits()...)), true
	}
	return GTIN{}, false
}

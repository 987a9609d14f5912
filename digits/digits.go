/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package digits provides the low-level digit operations shared by the GTIN
// formats: extracting decimal digits from free-form text, computing the GS1
// mod-10 check digit, and validating full digit sequences against it.
//
// Digit sequences are []byte slices in which every element is a numeric value
// 0-9, not an ASCII character. Use String to get the printable form.
package digits

// Extract returns the decimal digits of text, in order, as numeric values 0-9.
// Every non-digit character is discarded, so "0 71720-53977 4" and
// "071720539774" extract to the same sequence. There is no length restriction
// and no failure case; an empty result is valid output.
func Extract(text string) []byte {
	var out []byte
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			out = append(out, text[i]-'0')
		}
	}
	return out
}

// CheckDigit returns the GS1 mod-10 check digit for body, the digits of a code
// excluding the check position itself.
//
// Weights alternate 3, 1, 3, ... moving leftward from the rightmost digit of
// body (the digit adjacent to the check position), matching the GS1 General
// Specifications. The result is the mod 10 additive inverse of the weighted
// sum, and is always in [0, 9].
func CheckDigit(body []byte) byte {
	sum := 0
	weight := 3
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]) * weight
		weight = 4 - weight
	}
	return byte((10 - (sum % 10)) % 10)
}

// Validate reports whether seq is a plausible GTIN digit sequence: its length
// must be in [8, 14] and its final digit must equal the check digit computed
// over the preceding digits. It does not consider the format of the sequence;
// that's the caller's concern.
func Validate(seq []byte) bool {
	if len(seq) < 8 || len(seq) > 14 {
		return false
	}
	last := len(seq) - 1
	return seq[last] == CheckDigit(seq[:last])
}

// String returns the canonical text form of a digit sequence: the digits
// concatenated with no separators.
func String(seq []byte) string {
	b := make([]byte, len(seq))
	for i, d := range seq {
		b[i] = d + '0'
	}
	return string(b)
}

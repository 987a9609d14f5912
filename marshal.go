/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

// MarshalText encodes the GTIN as its canonical digit string. Together with
// UnmarshalText it satisfies the encoding interfaces, so encoding/json and
// similar packages interchange GTINs as plain strings like "071720539774".
func (g GTIN) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText decodes text exactly the way Parse handles raw input:
// non-digit characters are discarded and the digits are validated and
// classified. Decoding fails with Parse's error if validation fails.
func (g *GTIN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gtin/digits"
	"github.com/pkg/errors"
)

// AsGTIN14 returns the packaging-level GTIN-14 for this code: the indicator
// digit, the 13-digit item number (zero-padded as needed), and a freshly
// computed check digit. Indicator 0 marks the base unit; 1-8 mark packaging
// levels such as inner packs and cases; 9 marks variable-measure items.
//
// Only codes with an EAN-13-compatible item number can be lifted: UPC-E is
// expanded first, UPC-A and EAN-13 are zero-padded. EAN-8 and GTIN-14 sources
// fail with ErrConversion.
func (g GTIN) AsGTIN14(indicator byte) (GTIN, error) {
	if indicator > 9 {
		return GTIN{}, errors.Errorf(
			"indicator must be in [0,9], but is %d", indicator)
	}
	ean13, ok := g.AsEAN13()
	if !ok {
		return GTIN{}, errors.Wrapf(ErrConversion,
			"%s codes have no GTIN-14 packaging form", g.format)
	}

	// drop the EAN-13 check digit; it's recomputed over the longer body
	body := make([]byte, 0, 14)
	body = append(body, indicator)
	body = append(body, ean13.Digits()[:12]...)
	body = append(body, digits.CheckDigit(body))
	return newUnchecked(GTIN14, body), nil
}

// IndicatorDigit returns the leading packaging indicator digit of a GTIN-14;
// ok is false for every other format.
func (g GTIN) IndicatorDigit() (indicator byte, ok bool) {
	if g.format != GTIN14 {
		return 0, false
	}
	return g.buf[0], true
}

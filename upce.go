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

// ExpandUPCE reconstructs the 12-digit UPC-A from a UPC-E's compressed digit
// sequence. UPC-E compression is lossy in reverse: the 6 core digits encode a
// zero-suppressed manufacturer and item number, with the final core digit
// selecting which zeros were suppressed.
//
// seq may be 6 digits (the core itself), 7 digits (core plus check digit), or
// 8 digits (number system plus core plus check digit); the number system and
// check positions are discarded, since the expanded UPC-A always carries
// number system 0 and a freshly computed check digit. Any other length fails
// with ErrConversion (via errors.Cause).
func ExpandUPCE(seq []byte) (GTIN, error) {
	var core []byte
	switch len(seq) {
	case 6:
		core = seq
	case 7:
		core = seq[:6]
	case 8:
		core = seq[1:7]
	default:
		return GTIN{}, errors.Wrapf(ErrConversion,
			"UPC-E cores have 6 to 8 digits, but this has %d", len(seq))
	}

	// core[5] selects how the manufacturer and item numbers were compressed
	var man, item [5]byte
	switch core[5] {
	case 0, 1, 2:
		man = [5]byte{core[0], core[1], core[5], 0, 0}
		item = [5]byte{0, 0, core[2], core[3], core[4]}
	case 3:
		man = [5]byte{core[0], core[1], core[2], 0, 0}
		item = [5]byte{0, 0, 0, core[3], core[4]}
	case 4:
		man = [5]byte{core[0], core[1], core[2], core[3], 0}
		item = [5]byte{0, 0, 0, 0, core[4]}
	default: // 5-9
		man = [5]byte{core[0], core[1], core[2], core[3], core[4]}
		item = [5]byte{0, 0, 0, 0, core[5]}
	}

	upca := make([]byte, 0, 12)
	upca = append(upca, 0) // number system
	upca = append(upca, man[:]...)
	upca = append(upca, item[:]...)
	upca = append(upca, digits.CheckDigit(upca))
	if len(upca) != 12 {
		return GTIN{}, errors.Wrapf(ErrConversion,
			"assembled UPC-A has %d digits, not 12", len(upca))
	}
	return newUnchecked(UPCA, upca), nil
}

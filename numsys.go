/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import (
	"sort"
	"strconv"
)

// NumberSystem classifies a code's purpose based on its GS1 prefix.
type NumberSystem int

const (
	General NumberSystem = iota
	StoreUse
	Coupon
	Drug
	ISSN
	ISBN
	Refund
	Unknown
)

func (ns NumberSystem) String() string {
	switch ns {
	case General:
		return "General"
	case StoreUse:
		return "Store Use"
	case Coupon:
		return "Coupon"
	case Drug:
		return "Drug"
	case ISSN:
		return "ISSN"
	case ISBN:
		return "ISBN"
	case Refund:
		return "Refund"
	case Unknown:
		return "Unknown"
	}
	return "Unknown number system: " + strconv.Itoa(int(ns))
}

// GS1Prefix returns the 3-digit GS1 prefix identifying the code's issuing
// range. EAN-13 and EAN-8 prefixes are their first three digits; UPC-A codes
// implicitly carry a leading 0, so the prefix is 0 plus their first two;
// UPC-E codes are expanded to UPC-A first; GTIN-14 prefixes skip the leading
// packaging indicator digit. ok is false only if no prefix is derivable.
func (g GTIN) GS1Prefix() (prefix [3]byte, ok bool) {
	switch g.format {
	case EAN13, EAN8:
		return [3]byte{g.buf[0], g.buf[1], g.buf[2]}, true
	case UPCA:
		return [3]byte{0, g.buf[0], g.buf[1]}, true
	case UPCE:
		upca, err := ExpandUPCE(g.Digits())
		if err != nil {
			return [3]byte{}, false
		}
		return [3]byte{0, upca.buf[0], upca.buf[1]}, true
	case GTIN14:
		return [3]byte{g.buf[1], g.buf[2], g.buf[3]}, true
	}
	return [3]byte{}, false
}

// NumberSystem returns the number system classification of this GTIN's GS1
// prefix, or Unknown if no prefix is derivable.
func (g GTIN) NumberSystem() NumberSystem {
	prefix, ok := g.GS1Prefix()
	if !ok {
		return Unknown
	}
	return NumberSystemForPrefix(prefix)
}

// NumberSystemForPrefix maps a 3-digit GS1 prefix to its number system.
// Prefixes outside every reserved range are General.
func NumberSystemForPrefix(prefix [3]byte) NumberSystem {
	n := prefixValue(prefix)
	i := sort.Search(len(numberSystemRanges), func(i int) bool {
		return n <= numberSystemRanges[i].hi
	})
	if i < len(numberSystemRanges) && numberSystemRanges[i].lo <= n {
		return numberSystemRanges[i].system
	}
	return General
}

// CountryCode returns the ISO 3166-1 alpha-2 code of the country range that
// issued this GTIN, where one is defined. Drug codes (US NDC numbers) are
// always "US". Store-use, coupon, ISBN, ISSN, and refund prefixes identify a
// purpose rather than a place, so they carry no country. Prefix 390 belongs
// to Kosovo, which has no ISO alpha-2 code assigned; it's reported as the
// literal "KOSOVO".
//
// This is an approximate range lookup per the public GS1 prefix allocations,
// not a registry of actual company registrations.
func (g GTIN) CountryCode() (country string, ok bool) {
	switch g.NumberSystem() {
	case Drug:
		return "US", true
	case StoreUse, Coupon, ISBN, ISSN, Refund, Unknown:
		return "", false
	}

	prefix, ok := g.GS1Prefix()
	if !ok {
		return "", false
	}
	n := prefixValue(prefix)
	i := sort.Search(len(countryRanges), func(i int) bool {
		return n <= countryRanges[i].hi
	})
	if i < len(countryRanges) && countryRanges[i].lo <= n {
		return countryRanges[i].country, true
	}
	return "", false
}

func prefixValue(prefix [3]byte) int {
	return int(prefix[0])*100 + int(prefix[1])*10 + int(prefix[2])
}

type numberSystemRange struct {
	lo, hi int
	system NumberSystem
}

// numberSystemRanges holds the reserved GS1 prefix ranges, sorted and
// disjoint so lookups can binary search on hi.
var numberSystemRanges = []numberSystemRange{
	{20, 29, StoreUse},
	{30, 39, Drug},
	{40, 49, StoreUse},
	{50, 59, Coupon},
	{200, 299, StoreUse},
	{977, 977, ISSN},
	{978, 979, ISBN},
	{980, 980, Refund},
	{981, 984, Coupon},
	{990, 999, Coupon},
}

type countryRange struct {
	lo, hi  int
	country string
}

// countryRanges holds the public GS1 country prefix allocations, sorted and
// disjoint so lookups can binary search on hi. Ranges reserved for a number
// system never reach this table; CountryCode dispatches on the number system
// first.
var countryRanges = []countryRange{
	{0, 139, "US"},
	{300, 379, "FR"},
	{380, 380, "BG"},
	{383, 383, "SI"},
	{385, 385, "HR"},
	{387, 387, "BA"},
	{389, 389, "ME"},
	{390, 390, "KOSOVO"},
	{400, 440, "DE"},
	{450, 459, "JP"},
	{460, 469, "RU"},
	{470, 470, "KG"},
	{471, 471, "TW"},
	{474, 474, "EE"},
	{490, 499, "JP"},
	{500, 509, "GB"},
	{520, 521, "GR"},
	{539, 539, "IE"},
	{540, 549, "BE"},
	{570, 579, "DK"},
	{590, 590, "PL"},
	{599, 599, "HU"},
	{618, 618, "CI"},
	{619, 619, "TN"},
	{640, 649, "FI"},
	{700, 709, "NO"},
	{730, 739, "SE"},
	{742, 742, "HN"},
	{750, 750, "MX"},
	{754, 755, "CA"},
	{759, 759, "VE"},
	{760, 769, "CH"},
	{773, 773, "UY"},
	{789, 790, "BR"},
	{800, 839, "IT"},
	{840, 849, "ES"},
	{858, 858, "SK"},
	{859, 859, "CZ"},
	{860, 860, "RS"},
	{870, 879, "NL"},
	{885, 885, "TH"},
	{888, 888, "SG"},
	{900, 919, "AT"},
	{930, 939, "AU"},
	{940, 949, "NZ"},
}

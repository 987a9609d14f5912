/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package digits

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestExtract(t *testing.T) {
	for i, tt := range []struct {
		in, out string
	}{
		{"071720539774", "071720539774"},
		{"0 71720 53977 4", "071720539774"},
		{"8595701-530526", "8595701530526"},
		{"8:595682:148871", "8595682148871"},
		{"0 41420_06785_3", "041420067853"},
		{"0h71720 53977 4", "071720539774"},
		{"GTIN: 5201 3485", "52013485"},
		{"no digits here", ""},
		{"", ""},
		{"åäö0é1ü2", "012"},
	} {
		t.Run(fmt.Sprintf("%02d_%q", i, tt.in), func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(String(Extract(tt.in)), tt.out)
		})
	}
}

func TestCheckDigit(t *testing.T) {
	for i, tt := range []struct {
		body  string
		check byte
	}{
		// UPC-A bodies
		{"07172053977", 4},
		{"04142006785", 3},
		{"04130307341", 4},
		// EAN-13 bodies
		{"859570153052", 6},
		{"859570154237", 6},
		{"859568214887", 1},
		{"978316148410", 0},
		{"977243456100", 6},
		// EAN-8 body
		{"5201348", 5},
		// GTIN-14 body
		{"0001234567890", 5},
		// degenerate bodies are still well defined
		{"", 0},
		{"0000000", 0},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.body), func(t *testing.T) {
			w := expect.WrapT(t)
			w.As(tt.body).ShouldBeEqual(CheckDigit(Extract(tt.body)), tt.check)
		})
	}
}

func TestCheckDigit_0to9(t *testing.T) {
	// verify the check digit is always 0-9, regardless of input
	body := make([]byte, 17)
	for i := 0; i < 1000; i++ {
		n := 7 + rand.Intn(11)
		for j := 0; j < n; j++ {
			body[j] = byte(rand.Intn(10))
		}
		c := CheckDigit(body[:n])
		if c > 9 {
			t.Errorf("bad check digit for %s: %d", String(body[:n]), c)
		}
	}
}

func TestCheckDigit_leadingZeros(t *testing.T) {
	// leading zeros never shift the weights of the digits to their right, so
	// zero-padding a body must not change its check digit
	w := expect.WrapT(t)
	for _, body := range []string{"07172053977", "5201348", "859570153052"} {
		seq := Extract(body)
		padded := append([]byte{0}, seq...)
		w.As(body).ShouldBeEqual(CheckDigit(padded), CheckDigit(seq))
	}
}

func TestValidate(t *testing.T) {
	type validateTest struct {
		seq   string
		valid bool
	}

	pass := func(s string) validateTest { return validateTest{seq: s, valid: true} }
	fail := func(s string) validateTest { return validateTest{seq: s, valid: false} }

	for i, tt := range []validateTest{
		pass("8595701530526"), // EAN-13
		pass("8595701542376"), // EAN-13
		pass("8595682148871"), // EAN-13
		fail("8595701542377"), // bad check digit
		pass("071720539774"),  // UPC-A
		pass("041420067853"),  // UPC-A
		fail("071720539775"),  // bad check digit
		pass("52013485"),      // EAN-8
		fail("52013486"),      // bad check digit
		pass("00012345678905"), // GTIN-14

		// lengths outside [8,14] are never valid, check digit or not
		fail("5201348"),
		fail("000071720539774"),
		fail(""),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.seq), func(t *testing.T) {
			w := expect.WrapT(t)
			if tt.valid {
				w.As(tt.seq).ShouldBeTrue(Validate(Extract(tt.seq)))
			} else {
				w.As(tt.seq).ShouldBeFalse(Validate(Extract(tt.seq)))
			}
		})
	}
}

func TestString(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(String([]byte{0, 7, 1, 7, 2, 0, 5, 3, 9, 7, 7, 4}), "071720539774")
	w.ShouldBeEqual(String([]byte{}), "")
	w.ShouldBeEqual(String(nil), "")
}

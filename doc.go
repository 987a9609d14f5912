/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gtin parses, validates, converts, and classifies the GS1 GTIN
// family of retail trade item identifiers: UPC-A, UPC-E, EAN-8, EAN-13, and
// GTIN-14.
//
// Barcode data arriving from scanners, spreadsheets, and external databases
// rarely shows up in a single clean form: codes come with embedded spaces or
// hyphens, with leading zeros stripped by spreadsheet software, or zero-padded
// to a wider format by a database column. Parse accepts all of that -- it
// extracts the decimal digits, verifies the GS1 mod-10 check digit, and picks
// the format from the digit count and leading digit, repairing the common
// mangles along the way (an 11-digit code is a UPC-A missing its leading zero;
// a 13-digit code leading with 0 is a zero-padded UPC-A and is canonicalized
// back to UPC-A).
//
// The relevant definitions are in the GS1 General Specifications:
// https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
//
// One ambiguity cannot be repaired from the digits alone: UPC-E and EAN-8 are
// both 8-digit codes with identical checksum structure. Parse assumes a
// leading 0 means UPC-E (UPC-E is only defined for number system 0); when the
// symbology is known from context, ParseUPCE and ParseEAN8 are the
// authoritative override.
//
// Beyond recognition, the package converts between the formats where the
// mapping is lossless (ExpandUPCE, AsEAN13, AsGTIN14) and classifies a code's
// GS1 prefix into its number system (store use, coupon, US drug codes, ISBN,
// ISSN, refund receipts) and, where one is defined, its issuing country.
// The country mapping is an approximate range-table lookup over the public
// GS1 prefix allocations, not a registry of company registrations.
//
// Everything here is a pure function over immutable values: no I/O, no shared
// state, and every entry point is safe for concurrent use.
package gtin

// Package codec converts binary values to and from the text encodings used to
// move keys and signatures across text boundaries: lower-case hex, standard
// padded Base64, and the single-line PEM-like envelope produced by the signing
// tools.
//
// Every function in the package is pure and safe for concurrent use.
//
// # Format detection
//
// Key and signature text arriving from configuration files or API payloads is
// not tagged with its encoding. Base64OrHexToBytes and Detect infer it:
//
//  1. PEM markers and whitespace are stripped with ParsePemKey.
//  2. If the remainder matches [a-fA-F0-9]+ it is decoded as hex.
//  3. Otherwise, if it matches the padded Base64 grammar, it is decoded as Base64.
//  4. Otherwise ErrInvalidEncoding is returned.
//
// Hex takes precedence. A Base64 string made only of hex digits (for example
// "deadbeef") is decoded as hex and yields different bytes than the sender
// intended. Callers that know the encoding should use HexToBytes or
// Base64ToBytes directly.
//
// # PEM envelopes
//
// EncodePEM writes the body on one line between the BEGIN and END markers,
// which is what the signing tools have always produced. Consumers that enforce
// RFC 7468 line lengths should be given the output of EncodePEMStrict instead.
// ParsePemKey accepts both.
package codec

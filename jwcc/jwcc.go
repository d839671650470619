// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jwcc implements a parser for JSON With Commas and Comments (JWCC) as
// defined by https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
//
// Comments and trailing commas are removed by standardizing the input with
// hujson, and the result is parsed by jstate. Standardizing replaces comments
// and commas with whitespace, so the line numbers reported in syntax errors
// match the original input.
package jwcc

import (
	"bytes"
	"fmt"

	"github.com/creachadair/jstate"
	"github.com/tailscale/hujson"
)

// Parse parses a single JWCC value from data using a default parser.
func Parse(data []byte) (jstate.Value, error) { return ParseWith(nil, data) }

// ParseWith parses a single JWCC value from data using p. A nil p is treated
// as a default parser.
//
// If data is not well-formed JWCC, the error is reported by hujson. Otherwise
// any error has concrete type *jstate.SyntaxError. The input is not modified.
func ParseWith(p *jstate.Parser, data []byte) (jstate.Value, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, fmt.Errorf("jwcc: %w", err)
	}
	return p.ParseBytes(std)
}

// Format reformats JWCC source text in a canonical layout, preserving its
// comments. The input is not modified.
func Format(data []byte) ([]byte, error) {
	out, err := hujson.Format(bytes.Clone(data))
	if err != nil {
		return nil, fmt.Errorf("jwcc: %w", err)
	}
	return out, nil
}

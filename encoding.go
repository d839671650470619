// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

import (
	"errors"
	"strings"

	"github.com/creachadair/jstate/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.AppendQuote(nil, mem.S(src))) }

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
// Unlike Parse, Unquote does not permit whitespace around the quotes.
//
// Unquote reports an error of concrete type *SyntaxError if src is not a
// valid JSON string.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	var s stringRecognizer
	pos := newPosition()
	if err := decode(mem.S(src), &pos, func(r rune) error {
		if s.mode == strEnd {
			return failf(UnexpectedCharacter, "got %s after closing quote", describe(r))
		}
		_, err := s.feed(r)
		return err
	}); err != nil {
		return "", err
	}
	if s.mode != strEnd {
		pos.atEOF()
		return "", pos.locate(failf(UnterminatedString, "missing closing quote"))
	}
	return s.text(), nil
}

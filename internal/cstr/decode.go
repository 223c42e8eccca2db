package cstr

import (
	"bytes"
	"fmt"
	"strconv"
)

// Decode parses a fragment produced by Write and returns the embedded bytes.
func Decode(fragment []byte) ([]byte, error) {
	// The disclaimer quotes the input name verbatim, so only look past it
	marker := bytes.LastIndex(fragment, []byte("// clang-format off\n"))
	if marker < 0 {
		return nil, fmt.Errorf("%w: no clang-format marker", ErrMalformed)
	}
	decl := bytes.Index(fragment[marker:], []byte("const unsigned char "))
	if decl < 0 {
		return nil, fmt.Errorf("%w: no array declaration", ErrMalformed)
	}
	rest := fragment[marker+decl:]

	open := bytes.Index(rest, []byte("[] = {"))
	if open < 0 {
		return nil, fmt.Errorf("%w: no array declaration", ErrMalformed)
	}
	body := rest[open+len("[] = {"):]

	end := bytes.Index(body, []byte("};"))
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated array", ErrMalformed)
	}
	body = body[:end]

	out := make([]byte, 0, len(body)/6)
	for _, tok := range bytes.Split(body, []byte(",")) {
		tok = bytes.TrimSpace(tok)
		if len(tok) == 0 {
			continue
		}
		v, err := strconv.ParseUint(string(tok), 0, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: bad literal %q", ErrMalformed, tok)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

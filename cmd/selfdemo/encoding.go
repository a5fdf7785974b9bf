package main

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// encodings maps the names accepted by -encoding to their codecs. UTF-8 is
// handled without transcoding.
var encodings = map[string]encoding.Encoding{
	"latin1":      charmap.Windows1252,
	"ascii":       charmap.Windows1252,
	"windows1252": charmap.Windows1252,
	"utf16":       unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"ucs2":        unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf32":       utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"ucs4":        utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}

// encodeOutput wraps w so that text written to it is transcoded from UTF-8 to
// the named encoding. flush writes any buffered output; it does not close w.
func encodeOutput(w io.Writer, name string) (out io.Writer, flush func() error, err error) {
	if name == "utf8" || name == "" {
		return w, func() error { return nil }, nil
	}
	e, ok := encodings[name]
	if !ok {
		return nil, nil, fmt.Errorf("selfdemo: unsupported encoding %q", name)
	}
	t := transform.NewWriter(w, e.NewEncoder())
	return t, t.Close, nil
}

// Package charset resolves raw log file bytes into decoded text.
//
// Resolution tries a statistical detector first, then an independent
// secondary detector, then a fixed list of named encodings. The final
// fallback (latin1) accepts any byte sequence, so resolution only
// fails for empty input.
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// DecodeError reports that no encoding strategy produced text for a file.
type DecodeError struct {
	// File is the display name of the file that could not be decoded.
	File string

	// Tried lists the encoding names attempted before giving up.
	Tried []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s (tried: %s)", e.File, strings.Join(e.Tried, ", "))
}

// namedEncoding pairs a label with its codec for the fixed fallback list.
type namedEncoding struct {
	name string
	enc  encoding.Encoding
}

// fallbackEncodings is the fixed ordered list tried after both
// detectors. Order matters: utf-8 is strict and rejects most binary
// garbage, latin1 accepts everything.
var fallbackEncodings = []namedEncoding{
	{"utf-8", unicode.UTF8},
	{"gbk", simplifiedchinese.GBK},
	{"gb2312", simplifiedchinese.GB18030},
	{"big5", traditionalchinese.Big5},
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	{"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	{"latin1", charmap.ISO8859_1},
}

// Resolve decodes data into text using the detection cascade.
// name identifies the file in error messages only.
func Resolve(data []byte, name string) (string, error) {
	if len(data) == 0 {
		return "", &DecodeError{File: name, Tried: triedNames()}
	}

	// Primary: statistical detection.
	if detected, ok := Detect(data); ok {
		if enc, _ := xcharset.Lookup(detected); enc != nil {
			if text, err := decode(enc, data); err == nil {
				return text, nil
			}
		}
	}

	// Secondary: independent detector. Only a certain result (BOM or
	// valid UTF-8) is usable; the uncertain default would shadow the
	// fixed fallback list below.
	if enc, _, certain := xcharset.DetermineEncoding(data, ""); certain && enc != nil {
		if text, err := decode(enc, data); err == nil {
			return text, nil
		}
	}

	// Fixed ordered list, strict decodes.
	for _, ne := range fallbackEncodings {
		if text, ok := strictDecode(ne, data); ok {
			return text, nil
		}
	}

	return "", &DecodeError{File: name, Tried: triedNames()}
}

// Detect runs the statistical detector and returns the best charset
// name, lowercased for lookup. ok is false when detection fails or
// yields no charset.
func Detect(data []byte) (string, bool) {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil || result.Charset == "" {
		return "", false
	}
	return strings.ToLower(result.Charset), true
}

// decode converts data to UTF-8 using enc, tolerating replacement of
// invalid sequences. Used for detector-chosen encodings, where the
// detector already vouched for the data.
func decode(enc encoding.Encoding, data []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	// Some decoders pass a byte order mark through as U+FEFF.
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}

// strictDecode converts data using a named encoding and rejects the
// result if decoding errored or emitted replacement characters.
// latin1 maps every byte, so it never rejects non-empty input.
func strictDecode(ne namedEncoding, data []byte) (string, bool) {
	if ne.name == "utf-8" {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}

	out, err := ne.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(out, utf8.RuneError) && !bytes.ContainsRune(data, utf8.RuneError) {
		return "", false
	}
	return strings.TrimPrefix(string(out), "\ufeff"), true
}

func triedNames() []string {
	names := make([]string, len(fallbackEncodings))
	for i, ne := range fallbackEncodings {
		names[i] = ne.name
	}
	return names
}

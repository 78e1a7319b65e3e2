// Package charset maps DICOM Specific Character Set defined terms to text
// decoders.
//
// String-valued elements are encoded in the character repertoire declared by
// the (0008,0005) Specific Character Set element, which may change between
// datasets and between sequence items. The streaming engine surfaces the
// active CharacterSets alongside collected elements so their byte values can
// be decoded correctly.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part02/sect_D.6.2.html
package charset

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// labelByTerm maps Specific Character Set defined terms to encoding labels
// understood by the html/charset registry.
var labelByTerm = map[string]string{
	"":                "us-ascii", // empty value means default repertoire
	"ISO_IR 6":        "us-ascii",
	"ISO_IR 100":      "iso-ir-100",
	"ISO_IR 101":      "iso-ir-101",
	"ISO_IR 109":      "iso-ir-109",
	"ISO_IR 110":      "iso-ir-110",
	"ISO_IR 126":      "iso-ir-126",
	"ISO_IR 127":      "iso-ir-127",
	"ISO_IR 138":      "iso-ir-138",
	"ISO_IR 144":      "iso-ir-144",
	"ISO_IR 148":      "iso-ir-148",
	"ISO_IR 13":       "shift-jis",
	"ISO_IR 166":      "tis-620",
	"ISO_IR 192":      "utf-8",
	"GB18030":         "gb18030",
	"GBK":             "gbk",
	"ISO 2022 IR 6":   "us-ascii",
	"ISO 2022 IR 100": "iso-ir-100",
	"ISO 2022 IR 101": "iso-ir-101",
	"ISO 2022 IR 109": "iso-ir-109",
	"ISO 2022 IR 110": "iso-ir-110",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO 2022 IR 13":  "shift-jis",
	"ISO 2022 IR 166": "tis-620",
	"ISO 2022 IR 87":  "iso-2022-jp",
	"ISO 2022 IR 159": "iso-2022-jp",
	"ISO 2022 IR 149": "euc-kr",
}

// defaultEncoding is the fallback repertoire when no character set has been
// declared. Windows-1252 is a pragmatic superset of ISO-IR 6 that tolerates
// the 8-bit bytes real-world datasets contain.
var defaultEncoding encoding.Encoding = charmap.Windows1252

// CharacterSets holds the decoders selected by a Specific Character Set
// element value. The zero value decodes with the default repertoire.
type CharacterSets struct {
	terms     []string
	encodings []encoding.Encoding
}

// Default returns the character sets in effect before any (0008,0005)
// element has been seen.
func Default() CharacterSets {
	return CharacterSets{}
}

// Parse interprets the backslash-separated value of a Specific Character Set
// element. Unknown defined terms yield an error; the returned CharacterSets
// is usable regardless, falling back to the default repertoire.
func Parse(value string) (CharacterSets, error) {
	terms := strings.Split(value, "\\")
	cs := CharacterSets{terms: make([]string, 0, len(terms))}
	var firstErr error
	for _, term := range terms {
		term = strings.TrimSpace(term)
		cs.terms = append(cs.terms, term)
		label, ok := labelByTerm[term]
		if !ok {
			if firstErr == nil {
				firstErr = fmt.Errorf("unknown specific character set term: %q", term)
			}
			continue
		}
		if enc, _ := charset.Lookup(label); enc != nil {
			cs.encodings = append(cs.encodings, enc)
		}
	}
	return cs, firstErr
}

// Terms returns the defined terms this CharacterSets was parsed from.
func (c CharacterSets) Terms() []string {
	return c.terms
}

// IsDefault returns true when no character set has been declared.
func (c CharacterSets) IsDefault() bool {
	return len(c.encodings) == 0
}

// Decode converts element value bytes to a string using the primary declared
// encoding. Code-extension switching between multiple declared sets is not
// interpreted; the primary set covers the single-byte repertoires that
// dominate real data.
func (c CharacterSets) Decode(b []byte) string {
	enc := defaultEncoding
	if len(c.encodings) > 0 {
		enc = c.encodings[0]
	}
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}

// String renders the defined terms for diagnostics.
func (c CharacterSets) String() string {
	if len(c.terms) == 0 {
		return "<default>"
	}
	return strings.Join(c.terms, `\`)
}

/*
Package gb2312 maps Unicode code points to their two-byte GB2312 (EUC-CN)
code.

GB2312 is the legacy character set for simplified Chinese. Its hanzi are
arranged in 72 rows starting at lead byte 0xB0; the first-level hanzi
(rows 0xB0–0xD7) are ordered by pinyin, which is what makes the code space
usable as a search key for pronunciation tables.

Conversion is delegated to the GBK codec of golang.org/x/text. GBK is a
superset of GB2312, so results outside the GB2312 hanzi area are treated
as "not representable".
*/
package gb2312

import (
	"fmt"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// Code is a GB2312 character code, composed big-endian from the two bytes
// of the character's EUC-CN representation.
type Code uint16

// Boundaries of the hanzi area of GB2312.
const (
	LeadMin  = 0xB0
	LeadMax  = 0xF7
	TrailMin = 0xA1
	TrailMax = 0xFE
)

// FromBytes composes a code from a lead and a trail byte.
func FromBytes(hi, lo byte) Code {
	return Code(hi)<<8 | Code(lo)
}

// Bytes splits c into its lead and trail byte.
func (c Code) Bytes() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}

func (c Code) String() string {
	return fmt.Sprintf("%04X", uint16(c))
}

// InHanziArea is true if c lies within the GB2312 hanzi rows.
func InHanziArea(c Code) bool {
	hi, lo := c.Bytes()
	return hi >= LeadMin && hi <= LeadMax && lo >= TrailMin && lo <= TrailMax
}

// Encode returns the GB2312 code for r.
// ok is false if r has no representation in the GB2312 hanzi area.
func Encode(r rune) (c Code, ok bool) {
	// encoders carry transformation state, so each call gets its own
	enc := simplifiedchinese.GBK.NewEncoder()
	b, err := enc.Bytes([]byte(string(r)))
	if err != nil || len(b) != 2 {
		return 0, false
	}
	c = FromBytes(b[0], b[1])
	if !InHanziArea(c) {
		return 0, false
	}
	return c, true
}

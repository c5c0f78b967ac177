package pinyin

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pinyin/gb2312"
)

// Range of code points treated as Chinese characters.
const (
	ChineseFirst = 0x4E00 // 19968
	ChineseLast  = 0x9FA5 // 40869
)

// trimmed from both ends of a transliteration
const outerSpace = " \t\n\v\f\r"

// UnsupportedCharacterError is returned for characters within the Chinese
// range which have no GB2312 representation and therefore no entry in any
// pronunciation table.
type UnsupportedCharacterError struct {
	Rune rune
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("pinyin: character %q (U+%04X) is not covered by GB2312", e.Rune, e.Rune)
}

// IsChinese is true if r is treated as a Chinese character.
func IsChinese(r rune) bool {
	return r >= ChineseFirst && r <= ChineseLast
}

// ToPinyin transliterates input using the default table.
//
// Example:
//
//	"我们english字符" => "womenenglishzifu".
func ToPinyin(input string) (string, error) {
	return DefaultTable().ToPinyin(input)
}

// MustToPinyin is like ToPinyin but panics if input contains an
// unsupported character.
func MustToPinyin(input string) string {
	s, err := ToPinyin(input)
	if err != nil {
		panic(err)
	}
	return s
}

// Pronounce returns the syllable for a single Chinese character, using the
// default table.
func Pronounce(r rune) (string, error) {
	return DefaultTable().Pronounce(r)
}

// ToPinyin replaces every Chinese character of input by its syllable and
// keeps everything else. Leading and trailing whitespace is removed from
// the result.
func (t *Table) ToPinyin(input string) (string, error) {
	var b strings.Builder
	b.Grow(len(input) * 2)
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		if !IsChinese(r) {
			b.WriteString(input[i : i+size]) // keeps invalid bytes as they are
			i += size
			continue
		}
		syllable, err := t.Pronounce(r)
		if err != nil {
			return "", err
		}
		b.WriteString(syllable)
		i += size
	}
	return strings.Trim(b.String(), outerSpace), nil
}

// Pronounce returns the syllable for r. r must be a Chinese character.
func (t *Table) Pronounce(r rune) (string, error) {
	if !IsChinese(r) {
		return "", fmt.Errorf("pinyin: %q (U+%04X) is not a Chinese character", r, r)
	}
	code, ok := gb2312.Encode(r)
	if !ok {
		tracer().Debugf("no GB2312 code for %q", r)
		return "", &UnsupportedCharacterError{Rune: r}
	}
	return t.Lookup(code), nil
}

/*
Package pinyin transliterates Chinese text into pinyin.

Every character of the CJK Unified Ideographs range U+4E00–U+9FA5 is
re-encoded into its GB2312 code and resolved against a pronunciation table
keyed by that code. All other characters are passed through unchanged.
Syllables are written without tone marks and without separators:

	ToPinyin("中华人民共和国")  =>  "zhonghuarenmingongheguo"
	ToPinyin("史蒂芬·霍金")      =>  "shidifen·huojin"

Polyphonic characters always get the same, single reading. Characters in
the CJK range that GB2312 does not cover cannot be transliterated and
produce an *UnsupportedCharacterError.

The default table is embedded (see package gbspell) and covers the
first-level GB2312 hanzi, which are sorted by pinyin. A table stores one
entry per syllable: the code of the first character read that way. Lookup
therefore resolves a code to the nearest entry at or below it. Codes of
second-level hanzi, which are sorted by radical, resolve to the last
syllable of the table.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package pinyin

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pinyin'
func tracer() tracing.Trace {
	return tracing.Select("pinyin")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

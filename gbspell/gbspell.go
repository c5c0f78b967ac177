/*
Package gbspell reads pinyin spelling tables keyed by GB2312 code.

A spelling table lists, in ascending code order, the GB2312 code of the
first character of every run of characters sharing a syllable:

	# comment
	B0A1 a
	B0A3 ai
	B0B0 an

This works because first-level GB2312 hanzi are sorted by pinyin. The
package embeds such a table for the first-level block (see Default) and
offers a streaming Reader usable with pinyin.LoadTable.
*/
package gbspell

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/pinyin/gb2312"
)

//go:embed gb2312.spell
var defaultSpelling []byte

// DefaultName identifies the embedded spelling table.
const DefaultName = "gb2312.spell"

// Default returns a reader for the embedded first-level GB2312 table.
func Default() *Reader {
	return NewReader(bytes.NewReader(defaultSpelling))
}

// Reader streams (code, syllable) entries from a spelling table.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next entry as (code, syllable).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (gb2312.Code, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return r.decodeLine(line)
	}
	if err := r.scanner.Err(); err != nil {
		return 0, "", err
	}
	return 0, "", io.EOF
}

func (r *Reader) decodeLine(line string) (gb2312.Code, string, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, "", fmt.Errorf("line %d: expected code and syllable, got %q", r.line, line)
	}
	n, err := strconv.ParseUint(fields[0], 16, 16)
	if err != nil {
		return 0, "", fmt.Errorf("line %d: malformed code %q: %w", r.line, fields[0], err)
	}
	syllable := fields[1]
	for _, ch := range syllable {
		if ch < 'a' || ch > 'z' {
			return 0, "", fmt.Errorf("line %d: syllable %q is not lowercase pinyin", r.line, syllable)
		}
	}
	return gb2312.Code(n), syllable, nil
}

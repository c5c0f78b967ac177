package pinyin

import (
	"fmt"
	"io"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/pinyin/gb2312"
	"github.com/npillmayer/pinyin/gbspell"
)

// TableReader yields pronunciation table entries one-by-one, in ascending
// code order. It should return io.EOF when the stream is exhausted.
type TableReader interface {
	Next() (code gb2312.Code, syllable string, err error)
}

// Table is an immutable pronunciation table, mapping GB2312 codes to
// syllables. codes and syllables are parallel and sorted by code.
type Table struct {
	name      string
	codes     []gb2312.Code
	syllables []string

	indexOnce sync.Once
	index     *trie.Trie // distinct syllables, built on first use
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// DefaultTable returns the embedded pronunciation table for first-level
// GB2312 hanzi. It is loaded once and shared.
func DefaultTable() *Table {
	defaultOnce.Do(func() {
		t, err := LoadTable(gbspell.DefaultName, gbspell.Default())
		assert(err == nil, fmt.Sprintf("embedded pronunciation table is broken: %v", err))
		defaultTable = t
	})
	return defaultTable
}

// LoadTable builds a pronunciation table from a streaming source.
//
// Entries must be strictly ascending by code and carry a non-empty
// syllable; everything else is rejected, as lookup relies on order and
// positional alignment.
func LoadTable(name string, reader TableReader) (*Table, error) {
	t := &Table{
		name:      name,
		codes:     make([]gb2312.Code, 0, 512),
		syllables: make([]string, 0, 512),
	}
	for {
		code, syllable, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		if syllable == "" {
			return nil, fmt.Errorf("table %s: empty syllable for code %s", name, code)
		}
		if n := len(t.codes); n > 0 && t.codes[n-1] >= code {
			return nil, fmt.Errorf("table %s: code %s (%s) does not follow %s (%s)",
				name, code, syllable, t.codes[n-1], t.syllables[n-1])
		}
		t.codes = append(t.codes, code)
		t.syllables = append(t.syllables, syllable)
	}
	if len(t.codes) == 0 {
		return nil, fmt.Errorf("table %s: no entries", name)
	}
	tracer().Infof("pronunciation table %s: %d entries, codes %s..%s",
		name, len(t.codes), t.codes[0], t.codes[len(t.codes)-1])
	return t, nil
}

// Name identifies the table.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.codes)
}

// Entry returns code and syllable at position i.
func (t *Table) Entry(i int) (gb2312.Code, string) {
	return t.codes[i], t.syllables[i]
}

// Search returns the index of the entry for code.
//
// If code is not present, the nearest preceding entry is returned; codes
// below the first entry resolve to index 0. Search returns -1 only for an
// empty table.
func (t *Table) Search(code gb2312.Code) int {
	if len(t.codes) == 0 {
		return -1
	}
	lower, upper := 0, len(t.codes)
	for lower+1 != upper {
		mid := (lower + upper) / 2
		if t.codes[mid] < code {
			lower = mid
		} else if t.codes[mid] == code {
			return mid
		} else {
			upper = mid
		}
	}
	return upper - 1
}

// Lookup returns the syllable for code, see Search.
func (t *Table) Lookup(code gb2312.Code) string {
	i := t.Search(code)
	if i < 0 {
		return ""
	}
	if t.codes[i] != code {
		tracer().Debugf("no entry for code %s, using %s (%s)", code, t.codes[i], t.syllables[i])
	}
	return t.syllables[i]
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(%s,entries=%d)", t.name, len(t.codes))
}

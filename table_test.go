package pinyin

import (
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/pinyin/gb2312"
)

type tableEntry struct {
	code     gb2312.Code
	syllable string
}

type sliceTableReader struct {
	entries []tableEntry
	index   int
	err     error
}

func (r *sliceTableReader) Next() (gb2312.Code, string, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return 0, "", r.err
		}
		return 0, "", io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.code, entry.syllable, nil
}

func TestLoadTable(t *testing.T) {
	table, err := LoadTable("small", &sliceTableReader{
		entries: []tableEntry{
			{0xB0A1, "a"},
			{0xB0A3, "ai"},
			{0xB0B0, "an"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 3 || table.Name() != "small" {
		t.Fatalf("unexpected table %s", table)
	}
	if code, syllable := table.Entry(1); code != 0xB0A3 || syllable != "ai" {
		t.Fatalf("entry 1 should be B0A3 ai, is %s %s", code, syllable)
	}
}

func TestLoadTableRejectsDefects(t *testing.T) {
	tests := []struct {
		name    string
		entries []tableEntry
	}{
		{name: "descending", entries: []tableEntry{{0xB0A3, "ai"}, {0xB0A1, "a"}}},
		{name: "duplicate", entries: []tableEntry{{0xB2C2, "cai"}, {0xB2C2, "cai"}}},
		{name: "empty syllable", entries: []tableEntry{{0xB0A1, ""}}},
		{name: "empty", entries: nil},
	}
	for _, tt := range tests {
		if _, err := LoadTable(tt.name, &sliceTableReader{entries: tt.entries}); err == nil {
			t.Fatalf("table %q should have been rejected", tt.name)
		}
	}
}

func TestLoadTablePropagatesReaderError(t *testing.T) {
	broken := errors.New("broken source")
	_, err := LoadTable("broken", &sliceTableReader{
		entries: []tableEntry{{0xB0A1, "a"}},
		err:     broken,
	})
	if !errors.Is(err, broken) {
		t.Fatalf("expected wrapped reader error, got %v", err)
	}
}

func TestDefaultTableIsStrictlyAscending(t *testing.T) {
	table := DefaultTable()
	if table.Len() != 392 {
		t.Fatalf("expected 392 entries, got %d", table.Len())
	}
	if len(table.codes) != len(table.syllables) {
		t.Fatalf("codes and syllables not aligned: %d vs %d", len(table.codes), len(table.syllables))
	}
	for i := 0; i+1 < table.Len(); i++ {
		if table.codes[i] >= table.codes[i+1] {
			t.Fatalf("entry %d (%s) does not precede entry %d (%s)", i, table.codes[i], i+1, table.codes[i+1])
		}
	}
	if DefaultTable() != table {
		t.Fatalf("default table should be constructed once")
	}
}

func TestSearchExactMatches(t *testing.T) {
	table := DefaultTable()
	for i := 0; i < table.Len(); i++ {
		code, syllable := table.Entry(i)
		if got := table.Search(code); got != i {
			t.Fatalf("Search(%s) = %d, want %d", code, got, i)
		}
		if got := table.Lookup(code); got != syllable {
			t.Fatalf("Lookup(%s) = %q, want %q", code, got, syllable)
		}
	}
}

func TestSearchFallsBackToPredecessor(t *testing.T) {
	table := DefaultTable()
	for i := 0; i+1 < table.Len(); i++ {
		code, syllable := table.Entry(i)
		next, _ := table.Entry(i + 1)
		for c := code + 1; c < next; c++ {
			if got := table.Lookup(c); got != syllable {
				t.Fatalf("Lookup(%s) = %q, want %q of preceding entry %s", c, got, syllable, code)
			}
		}
	}
	if got := table.Lookup(0xB0A2); got != "a" {
		t.Fatalf("Lookup(B0A2) = %q, want a", got)
	}
	if got := table.Lookup(0x0001); got != "a" {
		t.Fatalf("codes below the table should resolve to the first entry, got %q", got)
	}
	if got := table.Lookup(0xF7FE); got != "zuo" {
		t.Fatalf("codes above the table should resolve to the last entry, got %q", got)
	}
}

func TestSearchEmptyTable(t *testing.T) {
	var table Table
	if i := table.Search(0xB0A1); i != -1 {
		t.Fatalf("empty table should yield -1, got %d", i)
	}
	if s := table.Lookup(0xB0A1); s != "" {
		t.Fatalf("empty table should yield no syllable, got %q", s)
	}
}

func TestTableToPinyin(t *testing.T) {
	table, err := LoadTable("tiny", &sliceTableReader{
		entries: []tableEntry{
			{0xB0A1, "a"},
			{0xD6D0, "zhong"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	// 国 (B9FA) has no entry and resolves to "a"
	if got, err := table.ToPinyin("中国x"); err != nil || got != "zhongax" {
		t.Fatalf("expected zhongax, got %q (%v)", got, err)
	}
}

package pinyin

import (
	"slices"

	"github.com/derekparker/trie"
)

// Syllables returns the distinct syllables of the table in ascending order.
func (t *Table) Syllables() []string {
	s := slices.Clone(t.syllables)
	slices.Sort(s)
	return slices.Compact(s)
}

// IsSyllable is true if s is one of the syllables of the table.
func (t *Table) IsSyllable(s string) bool {
	if s == "" {
		return false
	}
	_, found := t.syllableIndex().Find(s)
	return found
}

// SyllablesWithPrefix returns the distinct syllables starting with prefix,
// in ascending order.
//
// Example:
//
//	"zhu" => [ "zhu", "zhua", "zhuai", "zhuan", "zhuang", "zhui", "zhun", "zhuo" ].
func (t *Table) SyllablesWithPrefix(prefix string) []string {
	if prefix == "" {
		return t.Syllables()
	}
	idx := t.syllableIndex()
	if !idx.HasKeysWithPrefix(prefix) {
		return nil
	}
	matches := idx.PrefixSearch(prefix)
	slices.Sort(matches)
	return matches
}

// syllableIndex lazily builds a prefix trie over the distinct syllables.
// The trie is read-only once built.
func (t *Table) syllableIndex() *trie.Trie {
	t.indexOnce.Do(func() {
		idx := trie.New()
		for _, s := range t.Syllables() {
			idx.Add(s, nil)
		}
		tracer().Debugf("syllable index for %s built", t.name)
		t.index = idx
	})
	return t.index
}

// IsSyllable reports whether s is a syllable of the default table.
func IsSyllable(s string) bool {
	return DefaultTable().IsSyllable(s)
}

// SyllablesWithPrefix lists the syllables of the default table starting
// with prefix.
func SyllablesWithPrefix(prefix string) []string {
	return DefaultTable().SyllablesWithPrefix(prefix)
}

package app

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// defaultWords is used when no word list is configured.
var defaultWords = []string{
	"apple", "apricot", "avocado", "banana", "bilberry", "blackberry",
	"blueberry", "boysenberry", "cantaloupe", "cherry", "clementine",
	"cloudberry", "coconut", "cranberry", "currant", "damson", "date",
	"dragonfruit", "durian", "elderberry", "feijoa", "fig", "gooseberry",
	"grape", "grapefruit", "guava", "honeydew", "huckleberry", "jackfruit",
	"jujube", "kiwi", "kumquat", "lemon", "lime", "lingonberry", "loquat",
	"lychee", "mandarin", "mango", "mangosteen", "mulberry", "nectarine",
	"olive", "orange", "papaya", "passionfruit", "peach", "pear",
	"persimmon", "pineapple", "plantain", "plum", "pomegranate", "pomelo",
	"quince", "raspberry", "redcurrant", "salak", "satsuma", "soursop",
	"starfruit", "strawberry", "tamarind", "tangerine", "watermelon", "yuzu",
}

// WordIndex answers case-insensitive substring queries over a word list.
type WordIndex struct {
	words []string
	lower []string
}

// NewWordIndex builds an index. Blank and duplicate entries are dropped
// and the remaining words are sorted.
func NewWordIndex(words []string) *WordIndex {
	seen := make(map[string]bool, len(words))
	idx := &WordIndex{}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		idx.words = append(idx.words, w)
	}
	sort.Strings(idx.words)
	idx.lower = make([]string, len(idx.words))
	for i, w := range idx.words {
		idx.lower[i] = strings.ToLower(w)
	}
	return idx
}

// LoadWordIndex reads one word per line from path. An empty path yields
// the built-in list.
func LoadWordIndex(path string) (*WordIndex, error) {
	if path == "" {
		return NewWordIndex(defaultWords), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return NewWordIndex(words), nil
}

// Len returns the number of indexed words.
func (w *WordIndex) Len() int {
	return len(w.words)
}

// Filter returns the words containing query. An empty query matches
// everything.
func (w *WordIndex) Filter(query string) []string {
	if query == "" {
		return append([]string(nil), w.words...)
	}
	q := strings.ToLower(query)
	var out []string
	for i, lw := range w.lower {
		if strings.Contains(lw, q) {
			out = append(out, w.words[i])
		}
	}
	return out
}

package domain

// WordEntry is a word with its definition
type WordEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Tier is a named difficulty bucket of words
type Tier struct {
	Name  string      `json:"name"`
	Words []WordEntry `json:"words"`
}

// Corpus is an ordered list of difficulty tiers. Tier order follows the
// source document and is stable for the lifetime of the corpus.
type Corpus struct {
	Tiers []Tier `json:"tiers"`
}

// Tier returns the words of the named tier
func (c Corpus) Tier(name string) ([]WordEntry, bool) {
	for _, t := range c.Tiers {
		if t.Name == name {
			return t.Words, true
		}
	}
	return nil, false
}

// Names returns the tier names in corpus order
func (c Corpus) Names() []string {
	names := make([]string, 0, len(c.Tiers))
	for _, t := range c.Tiers {
		names = append(names, t.Name)
	}
	return names
}

// All returns every word across all tiers, in tier order
func (c Corpus) All() []WordEntry {
	var all []WordEntry
	for _, t := range c.Tiers {
		all = append(all, t.Words...)
	}
	return all
}

// Len returns the total number of words in the corpus
func (c Corpus) Len() int {
	n := 0
	for _, t := range c.Tiers {
		n += len(t.Words)
	}
	return n
}

// IsEmpty returns true if the corpus holds no words
func (c Corpus) IsEmpty() bool {
	return c.Len() == 0
}

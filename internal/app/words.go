package app

import "brainhub/internal/domain"

// FallbackVocabulary returns the built-in corpus used when the vocabulary
// resource cannot be loaded. Ten words per tier.
func FallbackVocabulary() domain.Corpus {
	return domain.Corpus{Tiers: []domain.Tier{
		{Name: "easy", Words: []domain.WordEntry{
			{Word: "happy", Definition: "feeling or showing pleasure or contentment"},
			{Word: "big", Definition: "of considerable size or extent"},
			{Word: "quick", Definition: "moving fast or doing something in a short time"},
			{Word: "bright", Definition: "giving out or reflecting much light"},
			{Word: "calm", Definition: "not showing or feeling nervousness or anger"},
			{Word: "strong", Definition: "having the power to move heavy weights or perform physically demanding tasks"},
			{Word: "gentle", Definition: "having or showing a mild, kind, or tender temperament"},
			{Word: "brave", Definition: "ready to face and endure danger or pain"},
			{Word: "clever", Definition: "quick to understand, learn, and devise or apply ideas"},
			{Word: "friendly", Definition: "kind and pleasant"},
		}},
		{Name: "medium", Words: []domain.WordEntry{
			{Word: "eloquent", Definition: "fluent or persuasive in speaking or writing"},
			{Word: "diligent", Definition: "having or showing care and conscientiousness in one's work or duties"},
			{Word: "resilient", Definition: "able to withstand or recover quickly from difficult conditions"},
			{Word: "meticulous", Definition: "showing great attention to detail; very careful and precise"},
			{Word: "pragmatic", Definition: "dealing with things sensibly and realistically in a practical way"},
			{Word: "ambiguous", Definition: "open to more than one interpretation; not having one obvious meaning"},
			{Word: "benevolent", Definition: "well-meaning and kindly"},
			{Word: "candid", Definition: "truthful and straightforward; frank"},
			{Word: "tenacious", Definition: "tending to keep a firm hold of something; persistent"},
			{Word: "versatile", Definition: "able to adapt or be adapted to many different functions or activities"},
		}},
		{Name: "hard", Words: []domain.WordEntry{
			{Word: "ephemeral", Definition: "lasting for a very short time"},
			{Word: "ubiquitous", Definition: "present, appearing, or found everywhere"},
			{Word: "insidious", Definition: "proceeding in a gradual, subtle way, but with harmful effects"},
			{Word: "esoteric", Definition: "intended for or likely to be understood by only a small number of people with specialized knowledge"},
			{Word: "perfunctory", Definition: "carried out with a minimum of effort or reflection"},
			{Word: "magnanimous", Definition: "generous or forgiving, especially toward a rival or less powerful person"},
			{Word: "obfuscate", Definition: "render obscure, unclear, or unintelligible"},
			{Word: "paradigm", Definition: "a typical example or pattern of something; a model"},
			{Word: "surreptitious", Definition: "kept secret, especially because it would not be approved of"},
			{Word: "vicarious", Definition: "experienced in the imagination through the feelings or actions of another person"},
		}},
	}}
}

// Package corpus fetches and parses vocabulary corpora.
//
// A corpus document is either JSON, mapping tier name to a list of
// {"word", "definition"} objects, or an HTML glossary where each element
// carrying a data-tier attribute holds <dt>word</dt><dd>definition</dd> pairs.
// Tier order always follows the document.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"brainhub/internal/domain"
)

// ErrMalformed is returned for documents that are not a usable corpus
var ErrMalformed = errors.New("malformed vocabulary document")

// Format identifies a corpus document format
type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// Parse decodes data in the given format
func Parse(data []byte, format Format) (domain.Corpus, error) {
	switch format {
	case FormatHTML:
		return ParseHTML(bytes.NewReader(data))
	default:
		return ParseJSON(data)
	}
}

// ParseJSON decodes a JSON corpus document
func ParseJSON(data []byte) (domain.Corpus, error) {
	if !gjson.ValidBytes(data) {
		return domain.Corpus{}, fmt.Errorf("%w: invalid json", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return domain.Corpus{}, fmt.Errorf("%w: expected object of tiers", ErrMalformed)
	}

	var corpus domain.Corpus
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			parseErr = fmt.Errorf("%w: tier %q is not a list", ErrMalformed, key.String())
			return false
		}
		tier := domain.Tier{Name: key.String(), Words: []domain.WordEntry{}}
		for _, item := range value.Array() {
			word := strings.TrimSpace(item.Get("word").String())
			if word == "" {
				continue
			}
			tier.Words = append(tier.Words, domain.WordEntry{
				Word:       word,
				Definition: strings.TrimSpace(item.Get("definition").String()),
			})
		}
		corpus.Tiers = setTier(corpus.Tiers, tier)
		return true
	})
	if parseErr != nil {
		return domain.Corpus{}, parseErr
	}
	if len(corpus.Tiers) == 0 {
		return domain.Corpus{}, fmt.Errorf("%w: no tiers", ErrMalformed)
	}
	return corpus, nil
}

// setTier replaces a tier of the same name in place, or appends tier.
// A repeated key in a JSON object keeps its last value at its first position.
func setTier(tiers []domain.Tier, tier domain.Tier) []domain.Tier {
	for i := range tiers {
		if tiers[i].Name == tier.Name {
			tiers[i] = tier
			return tiers
		}
	}
	return append(tiers, tier)
}

// ParseHTML decodes an HTML glossary document
func ParseHTML(r io.Reader) (domain.Corpus, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var corpus domain.Corpus
	doc.Find("[data-tier]").Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.AttrOr("data-tier", ""))
		if name == "" {
			return
		}
		tier := domain.Tier{Name: name, Words: []domain.WordEntry{}}
		sel.Find("dt").Each(func(_ int, dt *goquery.Selection) {
			word := strings.TrimSpace(dt.Text())
			if word == "" {
				return
			}
			tier.Words = append(tier.Words, domain.WordEntry{
				Word:       word,
				Definition: strings.TrimSpace(dt.NextFiltered("dd").Text()),
			})
		})
		corpus.Tiers = mergeTier(corpus.Tiers, tier)
	})

	if len(corpus.Tiers) == 0 {
		return domain.Corpus{}, fmt.Errorf("%w: no data-tier sections", ErrMalformed)
	}
	return corpus, nil
}

// mergeTier appends tier's words to a section of the same name, or appends tier
func mergeTier(tiers []domain.Tier, tier domain.Tier) []domain.Tier {
	for i := range tiers {
		if tiers[i].Name == tier.Name {
			tiers[i].Words = append(tiers[i].Words, tier.Words...)
			return tiers
		}
	}
	return append(tiers, tier)
}

// FormatFor guesses the document format from a content type or file name
func FormatFor(contentType, name string) Format {
	ct := strings.ToLower(contentType)
	n := strings.ToLower(name)
	switch {
	case strings.Contains(ct, "html"),
		strings.HasSuffix(n, ".html"),
		strings.HasSuffix(n, ".htm"):
		return FormatHTML
	default:
		return FormatJSON
	}
}

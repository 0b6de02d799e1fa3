package lib

import (
	"strings"

	"github.com/blevesearch/bleve"
)

/*
	Suggester proposes configured component keys for parts that have no
	tape, e.g. "0805@100nF" when only "0805@100n" is configured.
*/
type Suggester struct {
	index bleve.Index
}

type suggestDoc struct {
	Key       string
	Footprint string
	Value     string
}

func NewSuggester(config *PnPConfig) (*Suggester, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, err
	}

	for _, key := range config.Keys() {
		doc := suggestDoc{Key: key}
		if i := strings.LastIndex(key, "@"); i >= 0 {
			doc.Footprint, doc.Value = key[:i], key[i+1:]
		}
		if err := index.Index(key, doc); err != nil {
			index.Close()
			return nil, err
		}
	}

	return &Suggester{index: index}, nil
}

func (s *Suggester) Close() error {
	return s.index.Close()
}

/*
	Suggest returns up to n keys, best match first.
*/
func (s *Suggester) Suggest(part *Part, n int) ([]string, error) {
	query := bleve.NewMatchQuery(strings.Join([]string{part.Footprint, part.Value, part.ComponentName}, " "))
	query.SetFuzziness(1)

	result, err := s.index.Search(bleve.NewSearchRequestOptions(query, n, 0, false))
	if err != nil {
		return nil, err
	}

	keys := []string{}
	for _, hit := range result.Hits {
		keys = append(keys, hit.ID)
	}

	return keys, nil
}

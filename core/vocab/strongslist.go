package vocab

import (
	"encoding/json"
	"fmt"
)

// strongsListFile is the on-disk shape of tw_strongs_list.json (§6): a map
// from article path to {terms, strongs}, strongs being a list of Strong's
// id sequences as raw strings.
type strongsListFile map[string]struct {
	Terms   []string   `json:"terms"`
	Strongs [][]string `json:"strongs"`
}

// DecodeStrongsList decodes the companion tw_strongs_list JSON form (§4.B,
// §6) into a StrongsVocabulary. Malformed Strong's ids within a sequence
// are dropped; an entry that ends up with no valid ids in a sequence drops
// that sequence entirely (but the article, and its terms, are retained).
func DecodeStrongsList(data []byte) (*StrongsVocabulary, error) {
	var raw strongsListFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode tw_strongs_list: %w", err)
	}

	sv := &StrongsVocabulary{Articles: make(map[ArticlePath]*StrongsEntry, len(raw))}
	for pathStr, v := range raw {
		entry := &StrongsEntry{
			Path:  ArticlePath(pathStr),
			Terms: v.Terms,
		}
		for _, seq := range v.Strongs {
			ids := make([]StrongsID, 0, len(seq))
			for _, s := range seq {
				if id, ok := ParseStrongsID(s); ok {
					ids = append(ids, id)
				}
			}
			if len(ids) > 0 {
				entry.Strongs = append(entry.Strongs, ids)
			}
		}
		sv.Articles[entry.Path] = entry
	}
	return sv, nil
}

// Merge combines a markdown-derived Vocabulary's term lists with a
// StrongsVocabulary's strongs sequences, preferring the markdown-derived
// (headword-file) terms when both sources supply terms for the same
// article, since that file is the vocabulary's primary source (§4.A).
func Merge(v *Vocabulary, sv *StrongsVocabulary) *StrongsVocabulary {
	merged := &StrongsVocabulary{Articles: make(map[ArticlePath]*StrongsEntry)}
	for path, entry := range sv.Articles {
		me := &StrongsEntry{Path: path, Terms: entry.Terms, Strongs: entry.Strongs}
		if v != nil {
			if e := v.Get(path); e != nil && len(e.Terms) > 0 {
				me.Terms = e.Terms
			}
		}
		merged.Articles[path] = me
	}
	if v != nil {
		for _, path := range v.Paths {
			if _, ok := merged.Articles[path]; !ok {
				merged.Articles[path] = &StrongsEntry{Path: path, Terms: v.Get(path).Terms}
			}
		}
	}
	return merged
}

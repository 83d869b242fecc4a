package models

// ParsedFile is the parse result kept by the parse cache: the specifiers
// extracted from one file, tied to the hash of the content they came from.
type ParsedFile struct {
	RelPath     string   `json:"rel_path"`
	ContentHash string   `json:"content_hash"`
	Specifiers  []string `json:"specifiers"`
}

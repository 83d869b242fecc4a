package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type CacheEntry struct {
	ParsedFile *ParsedFile `json:"parsed_file"`
	CreatedAt  time.Time   `json:"created_at"`
}

func NewCacheEntry(parsedFile *ParsedFile) *CacheEntry {
	return &CacheEntry{
		ParsedFile: parsedFile,
		CreatedAt:  time.Now(),
	}
}

// IsValid reports whether the entry was built from content.
func (ce *CacheEntry) IsValid(content []byte) bool {
	if ce == nil || ce.ParsedFile == nil {
		return false
	}
	return ce.ParsedFile.ContentHash == HashContent(content)
}

func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

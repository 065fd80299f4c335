package lsp

import (
	"strings"
	"sync"
)

// Document holds the content of an open oseq script.
type Document struct {
	URI     string
	Content string
}

// DocumentStore is a thread-safe store of open LSP documents.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore creates an empty DocumentStore.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Set stores or replaces a document.
func (ds *DocumentStore) Set(uri, content string) *Document {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	doc := &Document{URI: uri, Content: content}
	ds.docs[uri] = doc
	return doc
}

// Get returns a document by URI, or nil if not found.
func (ds *DocumentStore) Get(uri string) *Document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// Delete removes a document from the store.
func (ds *DocumentStore) Delete(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// offsetAt converts a zero-based line/character position into a byte offset
// into content, clamping positions past the end of a line or the document.
func offsetAt(content string, line, char int) int {
	offset := 0
	rest := content
	for line > 0 {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return len(content)
		}
		offset += nl + 1
		rest = rest[nl+1:]
		line--
	}
	lineLen := len(rest)
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		lineLen = nl
	}
	if char > lineLen {
		char = lineLen
	}
	return offset + char
}

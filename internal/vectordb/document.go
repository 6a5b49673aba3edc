package vectordb

// DocumentType categorizes the kind of document stored in the vector DB.
type DocumentType string

const (
	DocTypeFact    DocumentType = "fact"
	DocTypeGallery DocumentType = "gallery"
)

// Document represents a piece of content to be stored and searched.
type Document struct {
	ID       string
	Content  string
	Metadata DocumentMetadata
}

// DocumentMetadata holds structured information about a document.
type DocumentMetadata struct {
	Type  DocumentType
	Icon  string
	Index int
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document   Document
	Similarity float32
}

// SearchFilter allows narrowing search results by metadata fields.
type SearchFilter struct {
	Type *DocumentType
}

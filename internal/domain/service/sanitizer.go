package service

// Sanitizer defines the interface for cleaning untrusted string input
// before it reaches validation, handlers or storage.
type Sanitizer interface {
	// Clean strips HTML markup from the string and trims surrounding
	// whitespace, keeping the remaining text content intact.
	Clean(s string) string
}

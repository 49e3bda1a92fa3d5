// Package docparse extracts plain text from PDF uploads attached to
// assistant questions. A failed extraction is recoverable: the chat
// handler substitutes an error note for the text and answers anyway.
package docparse

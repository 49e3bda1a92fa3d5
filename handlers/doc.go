/*
Package handlers implements the HTTP request handlers.

# Handler Groups

  - AuthHandler: operator login
  - DataHandler: the seven per-domain read endpoints
  - ChatHandler: assistant questions and conversation history

Handlers receive their dependencies (store, assistant) at construction
and hold no other state. Read endpoints never mutate anything; an
empty result set is a 200 with an empty JSON array, and only a store
failure produces a 500.

# Year Ranges

The monthly time-series endpoints (health, security) accept optional
from/to query parameters, defaulting to the generated coverage window
2023-2025.

# Chat

POST chat accepts JSON (question plus optional document text) or a
multipart form with a PDF upload. A document that fails to parse does
not fail the request - an error note replaces the extracted text and
the assistant answers without document context.
*/
package handlers

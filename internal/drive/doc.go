// Package drive is the external document store boundary for fieldbook.
//
// It wraps the Google Drive v3 API with the small surface the notebook tools
// need: download a file's full content, replace a file's full content, create
// a new file, and list or describe notebook files. Writes are single atomic
// content replacements; the store never sees a partially edited document.
//
// Provider failures are classified here: a 404 from Drive is reported as a
// not-found error carrying the file ID, anything else is surfaced with the
// provider's message attached. The client never retries.
package drive

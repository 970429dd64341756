package gst

import "fmt"

// numberBase offsets every account's sequence so the first document is
// numbered 5970 rather than 1.
const numberBase = 5969

// NextDocumentNumber derives the next sequential number for a prefix from
// the count of documents the owner already has. The count is read before the
// new document is written, with no atomic increment: two concurrent creates
// from the same account can be offered the same number. Changing the prefix
// never renumbers existing documents.
func NextDocumentNumber(prefix string, existingCount int64) string {
	return fmt.Sprintf("%s-%d", prefix, numberBase+existingCount+1)
}

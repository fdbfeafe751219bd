package common

// GetDocumentIDFromArgs extracts the Drive file ID from request arguments.
// Returns an empty string when the argument is absent or not a string.
func GetDocumentIDFromArgs(args map[string]interface{}) string {
	if id, ok := args["document_id"].(string); ok {
		return id
	}
	return ""
}

package drive

import "time"

// FileInfo represents metadata about a file in Google Drive.
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mimeType"`

	// Size is the size of the file in bytes
	Size int64 `json:"size,omitempty"`

	// CreatedTime is when the file was created
	CreatedTime time.Time `json:"createdTime"`

	// ModifiedTime is when the file was last modified
	ModifiedTime time.Time `json:"modifiedTime"`

	// WebViewLink is a link for opening the file in a relevant Google editor or viewer
	WebViewLink string `json:"webViewLink,omitempty"`

	// Parents are the IDs of the parent folders
	Parents []string `json:"parents,omitempty"`

	// Trashed indicates whether the file is in the trash
	Trashed bool `json:"trashed"`
}

// ListOptions contains options for listing notebook files.
type ListOptions struct {
	// Query is an additional filter using Google Drive's query language.
	// See https://developers.google.com/drive/api/guides/search-files
	// It is combined with the notebook MIME type filter.
	Query string

	// MaxResults is the maximum number of files to return (max: 1000)
	MaxResults int

	// OrderBy specifies the sort order of the result set
	// Examples: "folder,modifiedTime desc,name"
	OrderBy string

	// PageToken is a token for retrieving the next page of results
	PageToken string

	// Folder restricts the listing to a parent folder ID
	Folder string
}

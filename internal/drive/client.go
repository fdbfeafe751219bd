package drive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/mfeld/fieldbook/internal/google"
)

const (
	// NotebookMimeType is the media type used when storing notebook content.
	NotebookMimeType = "application/x-ipynb+json"

	// ColabMimeType is the MIME type Drive assigns to Colab notebooks.
	ColabMimeType = "application/vnd.google.colaboratory"

	// fileFields are the metadata fields requested for every file result.
	fileFields = "id, name, mimeType, size, createdTime, modifiedTime, webViewLink, parents, trashed"
)

// NotFoundError indicates that the store has no document with the given ID.
type NotFoundError struct {
	FileID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %s not found", e.FileID)
}

// IsNotFound reports whether err indicates a missing document.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// classify maps a Drive API error onto the store's error taxonomy.
func classify(fileID string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return &NotFoundError{FileID: fileID}
	}
	return err
}

// Client wraps the Google Drive API service as a document store.
type Client struct {
	service *drive.Service
}

// NewClient creates a Drive client authenticated with the given credentials.
func NewClient(ctx context.Context, cfg google.Config) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(cfg.HTTPClient(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return &Client{service: service}, nil
}

// NewClientWithService creates a Client around an existing Drive service.
// Used by tests to point the client at a stub HTTP server.
func NewClientWithService(service *drive.Service) *Client {
	return &Client{service: service}
}

// Download fetches the full content of a file.
func (c *Client) Download(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	resp, err := c.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, classify(fileID, fmt.Errorf("failed to download file %s: %w", fileID, err))
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read content of file %s: %w", fileID, err)
	}
	return content, nil
}

// Update replaces the full content of an existing file in a single atomic
// media upload, leaving the file's metadata otherwise untouched.
func (c *Client) Update(ctx context.Context, fileID string, content []byte, mimeType string) (*FileInfo, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	file, err := c.service.Files.Update(fileID, &drive.File{}).
		Context(ctx).
		Media(bytes.NewReader(content), googleapi.ContentType(mimeType)).
		Fields(fileFields).
		Do()
	if err != nil {
		return nil, classify(fileID, fmt.Errorf("failed to update file %s: %w", fileID, err))
	}

	return convertToFileInfo(file), nil
}

// Create stores a new file with the given name and content.
func (c *Client) Create(ctx context.Context, name string, content []byte, mimeType string, parents []string) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}

	meta := &drive.File{
		Name:     name,
		MimeType: mimeType,
	}
	if len(parents) > 0 {
		meta.Parents = parents
	}

	file, err := c.service.Files.Create(meta).
		Context(ctx).
		Media(bytes.NewReader(content), googleapi.ContentType(mimeType)).
		Fields(fileFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", name, err)
	}

	return convertToFileInfo(file), nil
}

// Get retrieves metadata for a single file.
func (c *Client) Get(ctx context.Context, fileID string) (*FileInfo, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields(fileFields).
		Do()
	if err != nil {
		return nil, classify(fileID, fmt.Errorf("failed to get file %s: %w", fileID, err))
	}

	return convertToFileInfo(file), nil
}

// ListNotebooks lists notebook files, newest first by default. It returns the
// page of results together with the next-page token; pagination is the
// caller's concern.
func (c *Client) ListNotebooks(ctx context.Context, options *ListOptions) ([]*FileInfo, string, error) {
	call := c.service.Files.List().
		Context(ctx).
		Fields(googleapi.Field("nextPageToken, files(" + fileFields + ")"))

	query := notebookQuery(options)
	call = call.Q(query)

	orderBy := "modifiedTime desc"
	if options != nil {
		if options.MaxResults > 0 {
			call = call.PageSize(int64(options.MaxResults))
		}
		if options.OrderBy != "" {
			orderBy = options.OrderBy
		}
		if options.PageToken != "" {
			call = call.PageToken(options.PageToken)
		}
	}
	call = call.OrderBy(orderBy)

	fileList, err := call.Do()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list notebooks: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}

	return files, fileList.NextPageToken, nil
}

// notebookQuery builds the Drive query string for listing notebooks.
func notebookQuery(options *ListOptions) string {
	terms := []string{
		fmt.Sprintf("(mimeType='%s' or mimeType='%s' or name contains '.ipynb')", ColabMimeType, NotebookMimeType),
		"trashed=false",
	}
	if options != nil {
		if options.Folder != "" {
			terms = append(terms, fmt.Sprintf("'%s' in parents", options.Folder))
		}
		if options.Query != "" {
			terms = append(terms, "("+options.Query+")")
		}
	}
	return strings.Join(terms, " and ")
}

// convertToFileInfo converts a Drive API File to the local FileInfo type.
func convertToFileInfo(f *drive.File) *FileInfo {
	info := &FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		WebViewLink: f.WebViewLink,
		Parents:     f.Parents,
		Trashed:     f.Trashed,
	}

	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			info.CreatedTime = t
		}
	}
	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			info.ModifiedTime = t
		}
	}

	return info
}

package drive

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

func TestConvertToFileInfo(t *testing.T) {
	driveFile := &drive.File{
		Id:           "nb123",
		Name:         "analysis.ipynb",
		MimeType:     ColabMimeType,
		Size:         2048,
		CreatedTime:  "2026-01-01T10:00:00Z",
		ModifiedTime: "2026-01-02T15:30:00Z",
		WebViewLink:  "https://colab.research.google.com/drive/nb123",
		Parents:      []string{"folder1"},
		Trashed:      false,
	}

	info := convertToFileInfo(driveFile)

	assert.Equal(t, "nb123", info.ID)
	assert.Equal(t, "analysis.ipynb", info.Name)
	assert.Equal(t, ColabMimeType, info.MimeType)
	assert.Equal(t, int64(2048), info.Size)
	assert.Equal(t, time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), info.CreatedTime)
	assert.Equal(t, time.Date(2026, 1, 2, 15, 30, 0, 0, time.UTC), info.ModifiedTime)
	assert.Equal(t, []string{"folder1"}, info.Parents)
	assert.False(t, info.Trashed)
}

func TestConvertToFileInfoInvalidTimestamps(t *testing.T) {
	info := convertToFileInfo(&drive.File{
		Id:           "nb123",
		CreatedTime:  "not-a-time",
		ModifiedTime: "",
	})

	assert.True(t, info.CreatedTime.IsZero())
	assert.True(t, info.ModifiedTime.IsZero())
}

func TestNotebookQuery(t *testing.T) {
	tests := []struct {
		name     string
		options  *ListOptions
		contains []string
	}{
		{
			name:    "nil options",
			options: nil,
			contains: []string{
				"mimeType='" + ColabMimeType + "'",
				"name contains '.ipynb'",
				"trashed=false",
			},
		},
		{
			name:     "folder filter",
			options:  &ListOptions{Folder: "folder42"},
			contains: []string{"'folder42' in parents"},
		},
		{
			name:     "extra query",
			options:  &ListOptions{Query: "name contains 'report'"},
			contains: []string{"(name contains 'report')"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := notebookQuery(tt.options)
			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	notFound := fmt.Errorf("failed: %w", &googleapi.Error{Code: http.StatusNotFound})
	err := classify("nb123", notFound)

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "nb123", nf.FileID)
	assert.Equal(t, "document nb123 not found", nf.Error())
	assert.True(t, IsNotFound(err))

	serverErr := fmt.Errorf("failed: %w", &googleapi.Error{Code: http.StatusInternalServerError})
	assert.False(t, IsNotFound(classify("nb123", serverErr)))

	plainErr := errors.New("connection reset")
	assert.Same(t, plainErr, classify("nb123", plainErr))
}

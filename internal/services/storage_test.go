package services

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveResumeRejectsInvalidUploads(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	t.Run("empty filename", func(t *testing.T) {
		_, _, err := storage.SaveResume(&multipart.FileHeader{Filename: "   "})
		assert.ErrorContains(t, err, "empty filename")
	})

	t.Run("non-pdf extension", func(t *testing.T) {
		_, _, err := storage.SaveResume(&multipart.FileHeader{Filename: "resume.docx"})
		assert.ErrorContains(t, err, "only PDF")
	})
}

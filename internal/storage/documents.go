// Package storage keeps the scanned PDFs that belong to forms. There is no
// database column for attachments; a form's PDF lives at a deterministic
// path derived from the form id, so at most one attachment exists per form.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const formDocSubdir = "formulare"

// ErrAttachmentExists is returned by Attach when the form already has a PDF
// and overwrite was not requested. The caller decides whether to retry with
// overwrite after confirming with the user.
var ErrAttachmentExists = errors.New("form already has an attachment")

// DocumentStore stores form PDFs under a per-user root directory.
type DocumentStore struct {
	root string
}

// NewDocumentStore creates the store rooted at the given directory,
// creating the form subdirectory if needed.
func NewDocumentStore(root string) (*DocumentStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("document root must not be empty")
	}
	if err := os.MkdirAll(filepath.Join(root, formDocSubdir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create document directory: %w", err)
	}
	return &DocumentStore{root: root}, nil
}

// Path returns the attachment path for a form id.
func (s *DocumentStore) Path(formID int32) string {
	return filepath.Join(s.root, formDocSubdir, fmt.Sprintf("formular_%d.pdf", formID))
}

// Exists reports whether the form has an attachment.
func (s *DocumentStore) Exists(formID int32) bool {
	info, err := os.Stat(s.Path(formID))
	return err == nil && !info.IsDir()
}

// Attach copies the source PDF into the store. The source must have a .pdf
// extension and the form must be persisted (positive id). When an attachment
// already exists and overwrite is false, ErrAttachmentExists is returned and
// nothing is written. The copy goes through a temp file and a rename so a
// failed copy never clobbers an existing attachment.
func (s *DocumentStore) Attach(formID int32, sourcePath string, overwrite bool) error {
	if formID <= 0 {
		return errors.New("form has no valid id, save it first")
	}
	if !strings.EqualFold(filepath.Ext(sourcePath), ".pdf") {
		return errors.New("attachment must be a .pdf file")
	}

	target := s.Path(formID)
	if !overwrite && s.Exists(formID) {
		return ErrAttachmentExists
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	tmp := target + ".tmp-" + uuid.New().String()
	dst, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create attachment file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to copy attachment: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finish attachment: %w", err)
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to store attachment: %w", err)
	}
	return nil
}

// DefaultRoot returns the per-user document root, ".kud-karadjordje" in the
// user's home directory.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".kud-karadjordje"), nil
}

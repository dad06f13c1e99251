package service

import (
	"context"
	"errors"
	"strings"

	"kud-club-backend/internal/domain"
	"kud-club-backend/internal/repository"
	"kud-club-backend/internal/storage"
	"kud-club-backend/internal/validation"
)

type formService struct {
	forms     repository.FormRepository
	documents *storage.DocumentStore
}

func NewFormService(forms repository.FormRepository, documents *storage.DocumentStore) FormService {
	return &formService{forms: forms, documents: documents}
}

func (s *formService) List(ctx context.Context, onlyPending bool) []domain.Form {
	forms := s.forms.FindAll(ctx)
	if !onlyPending {
		return forms
	}
	pending := make([]domain.Form, 0, len(forms))
	for _, f := range forms {
		if f.Status == domain.FormStatusPending {
			pending = append(pending, f)
		}
	}
	return pending
}

func (s *formService) Get(ctx context.Context, id int32) *domain.Form {
	return s.forms.FindByID(ctx, id)
}

func (s *formService) SearchByType(ctx context.Context, term string) []domain.Form {
	return s.forms.SearchByType(ctx, term)
}

func (s *formService) Create(ctx context.Context, f *domain.Form) error {
	f.Type = strings.TrimSpace(f.Type)
	if r := validation.ValidateForm(f); !r.OK() {
		return r
	}
	if !s.forms.Save(ctx, f) {
		return ErrStorage
	}
	return nil
}

func (s *formService) Update(ctx context.Context, f *domain.Form) error {
	if f.ID <= 0 {
		return errors.New("form has no id, save it first")
	}
	f.Type = strings.TrimSpace(f.Type)
	if r := validation.ValidateForm(f); !r.OK() {
		return r
	}
	if !s.forms.Update(ctx, f) {
		return ErrStorage
	}
	return nil
}

func (s *formService) Delete(ctx context.Context, id int32) error {
	if !s.forms.Delete(ctx, id) {
		return ErrStorage
	}
	return nil
}

func (s *formService) AttachmentPath(formID int32) string {
	return s.documents.Path(formID)
}

func (s *formService) HasAttachment(formID int32) bool {
	return s.documents.Exists(formID)
}

func (s *formService) AttachPDF(formID int32, sourcePath string, overwrite bool) error {
	return s.documents.Attach(formID, sourcePath, overwrite)
}

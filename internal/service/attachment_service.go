package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// allowedAttachmentTypes are the content types accepted for supporting
// documents.
var allowedAttachmentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// UploadAttachmentInput carries one uploaded file and its metadata.
type UploadAttachmentInput struct {
	DocumentID   uuid.UUID
	OriginalName string
	ContentType  string
	Data         []byte
}

// AttachmentService stores supporting documents against invoices and bills.
type AttachmentService interface {
	Upload(ctx context.Context, tenantID, userID uuid.UUID, input UploadAttachmentInput) (*domain.Attachment, error)
	ListByDocument(ctx context.Context, tenantID, documentID uuid.UUID) ([]domain.Attachment, error)
	DownloadURL(ctx context.Context, tenantID, attachmentID uuid.UUID) (string, error)
	Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error
}

type attachmentService struct {
	attachmentRepo port.AttachmentRepository
	storage        port.ObjectStorage
	cfg            config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(attachmentRepo port.AttachmentRepository, storage port.ObjectStorage, cfg config.S3Config) AttachmentService {
	return &attachmentService{attachmentRepo: attachmentRepo, storage: storage, cfg: cfg}
}

func (s *attachmentService) Upload(ctx context.Context, tenantID, userID uuid.UUID, input UploadAttachmentInput) (*domain.Attachment, error) {
	if !allowedAttachmentTypes[input.ContentType] {
		return nil, domain.ErrUnsupportedFileType
	}
	maxSize := s.cfg.MaxFileSizeMB * 1024 * 1024
	if int64(len(input.Data)) > maxSize {
		return nil, domain.ErrFileTooLarge
	}

	fileName := uuid.New().String() + filepath.Ext(input.OriginalName)
	storageKey := fmt.Sprintf("%s/%s/%s", tenantID, input.DocumentID, fileName)

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         storageKey,
		Body:        bytes.NewReader(input.Data),
		ContentType: input.ContentType,
		Size:        int64(len(input.Data)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	att := &domain.Attachment{
		ID:           uuid.New(),
		TenantID:     tenantID,
		DocumentID:   input.DocumentID,
		FileName:     fileName,
		OriginalName: input.OriginalName,
		ContentType:  input.ContentType,
		FileSize:     int64(len(input.Data)),
		StorageKey:   storageKey,
		UploadedBy:   userID,
	}
	if err := s.attachmentRepo.Create(ctx, att); err != nil {
		// The object is already in storage; best effort cleanup.
		_ = s.storage.Delete(ctx, s.cfg.Bucket, storageKey)
		return nil, fmt.Errorf("attachmentService.Upload: %w", err)
	}
	return att, nil
}

func (s *attachmentService) ListByDocument(ctx context.Context, tenantID, documentID uuid.UUID) ([]domain.Attachment, error) {
	return s.attachmentRepo.ListByDocument(ctx, tenantID, documentID)
}

func (s *attachmentService) DownloadURL(ctx context.Context, tenantID, attachmentID uuid.UUID) (string, error) {
	att, err := s.attachmentRepo.GetByID(ctx, tenantID, attachmentID)
	if err != nil {
		return "", err
	}
	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, att.StorageKey, 900)
	if err != nil {
		return "", fmt.Errorf("attachmentService.DownloadURL: %w", err)
	}
	return url, nil
}

func (s *attachmentService) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	att, err := s.attachmentRepo.GetByID(ctx, tenantID, attachmentID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, s.cfg.Bucket, att.StorageKey); err != nil {
		return fmt.Errorf("attachmentService.Delete: %w", err)
	}
	return s.attachmentRepo.Delete(ctx, tenantID, attachmentID)
}

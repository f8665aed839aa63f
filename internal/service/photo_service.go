package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPhotoNotFound = errors.New("progress photo not found")
)

// PhotoUpload pairs stored photo metadata with the presigned URL the client
// must PUT the file to.
type PhotoUpload struct {
	Photo     domain.ProgressPhoto
	UploadURL string
}

// PhotoWithURL pairs photo metadata with a presigned GET URL for viewing.
type PhotoWithURL struct {
	Photo       domain.ProgressPhoto
	DownloadURL string
}

// --- Service Interface ---
type ProgressPhotoService interface {
	RequestUpload(ctx context.Context, userID, fileName, contentType string) (*PhotoUpload, error)
	ListPhotos(ctx context.Context, userID string) ([]PhotoWithURL, error)
	DeletePhoto(ctx context.Context, userID string, photoID primitive.ObjectID) error
}

// --- Service Implementation ---

// progressPhotoService implements the ProgressPhotoService interface.
type progressPhotoService struct {
	photoRepo   repository.ProgressPhotoRepository
	fileStorage storage.FileStorage
}

// NewProgressPhotoService creates a new instance of progressPhotoService.
func NewProgressPhotoService(photoRepo repository.ProgressPhotoRepository, fileStorage storage.FileStorage) ProgressPhotoService {
	return &progressPhotoService{
		photoRepo:   photoRepo,
		fileStorage: fileStorage,
	}
}

// RequestUpload records photo metadata and hands back a presigned PUT URL.
// The client uploads the file directly to object storage.
func (s *progressPhotoService) RequestUpload(ctx context.Context, userID, fileName, contentType string) (*PhotoUpload, error) {
	if userID == "" || fileName == "" {
		return nil, ErrValidationFailed
	}
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		return nil, ErrValidationFailed
	}

	objectKey := fmt.Sprintf("progress/%s/%s%s", userID, uuid.NewString(), path.Ext(fileName))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	photo := &domain.ProgressPhoto{
		UserID:      userID,
		ObjectKey:   objectKey,
		FileName:    fileName,
		ContentType: contentType,
	}
	id, err := s.photoRepo.Create(ctx, photo)
	if err != nil {
		return nil, err
	}
	photo.ID = id

	return &PhotoUpload{Photo: *photo, UploadURL: uploadURL}, nil
}

// ListPhotos returns the user's photos, newest first, each with a presigned
// download URL. A photo whose URL cannot be signed is returned without one
// rather than failing the whole listing.
func (s *progressPhotoService) ListPhotos(ctx context.Context, userID string) ([]PhotoWithURL, error) {
	photos, err := s.photoRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]PhotoWithURL, 0, len(photos))
	for _, photo := range photos {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, photo.ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			logrus.WithError(err).WithField("objectKey", photo.ObjectKey).Warn("failed to presign download URL")
			url = ""
		}
		result = append(result, PhotoWithURL{Photo: photo, DownloadURL: url})
	}
	return result, nil
}

// DeletePhoto removes the stored object and its metadata. The repository
// filter enforces ownership.
func (s *progressPhotoService) DeletePhoto(ctx context.Context, userID string, photoID primitive.ObjectID) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if photo.UserID != userID {
		return ErrPhotoNotFound
	}

	if err := s.fileStorage.DeleteObject(ctx, photo.ObjectKey); err != nil {
		return err
	}

	if err := s.photoRepo.Delete(ctx, photoID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/internal/infrastructure/storage"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/agustiinveraa/inmoflow/pkg/utils"
	"github.com/google/uuid"
)

// MediaService handles property image uploads and removals
type MediaService struct {
	store       storage.ObjectStorage
	propertySvc *PropertyService
	maxSize     int64
	maxImages   int
}

// NewMediaService creates a new media service
func NewMediaService(store storage.ObjectStorage, propertySvc *PropertyService, maxSize int64, maxImages int) *MediaService {
	return &MediaService{
		store:       store,
		propertySvc: propertySvc,
		maxSize:     maxSize,
		maxImages:   maxImages,
	}
}

// UploadResult reports the outcome for one file of a batch upload.
// A batch never fails wholesale: each file either yields a URL or its own
// error message.
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// UploadImagesOutput bundles the per-file results with the property as it
// looks after the accepted files were attached.
type UploadImagesOutput struct {
	Results  []UploadResult   `json:"results"`
	Property *entity.Property `json:"property"`
}

// UploadImages validates and stores a batch of image files for a property,
// appending the stored URLs in upload order. Files that fail validation or
// upload are reported individually and do not block the rest.
func (s *MediaService) UploadImages(ctx context.Context, propertyID uuid.UUID, files []*multipart.FileHeader) (*UploadImagesOutput, error) {
	property, err := s.propertySvc.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, apperror.NewBadRequestError("No files provided")
	}

	remaining := s.maxImages - len(property.Images)

	results := make([]UploadResult, 0, len(files))
	urls := make([]string, 0, len(files))
	for _, file := range files {
		result := UploadResult{Filename: file.Filename}

		switch {
		case remaining <= 0:
			result.Error = fmt.Sprintf("property already has the maximum of %d images", s.maxImages)
		case file.Size > s.maxSize:
			result.Error = fmt.Sprintf("file exceeds the %d MB limit", s.maxSize/(1024*1024))
		case !isImage(file):
			result.Error = "only image files are accepted"
		default:
			url, err := s.storeFile(ctx, file)
			if err != nil {
				log.Printf("Failed to upload %s: %v", file.Filename, err)
				result.Error = "upload failed"
			} else {
				result.URL = url
				urls = append(urls, url)
				remaining--
			}
		}

		results = append(results, result)
	}

	if len(urls) > 0 {
		property, err = s.propertySvc.AddImages(ctx, propertyID, urls)
		if err != nil {
			return nil, err
		}
	}

	return &UploadImagesOutput{Results: results, Property: property}, nil
}

// DeleteImage detaches an image URL from the property and removes the
// underlying object. A storage failure after the detach is logged but not
// surfaced: the property no longer references the object either way.
func (s *MediaService) DeleteImage(ctx context.Context, propertyID uuid.UUID, imageURL string) (*entity.Property, error) {
	property, err := s.propertySvc.RemoveImage(ctx, propertyID, imageURL)
	if err != nil {
		return nil, err
	}

	key, err := s.store.KeyFromURL(imageURL)
	if err != nil {
		log.Printf("Could not derive storage key from %s: %v", imageURL, err)
		return property, nil
	}
	if err := s.store.Delete(ctx, key); err != nil {
		log.Printf("Failed to delete object %s: %v", key, err)
	}

	return property, nil
}

func (s *MediaService) storeFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := "properties/" + utils.GenerateObjectName(file.Filename)
	return s.store.Upload(ctx, key, file.Header.Get("Content-Type"), src)
}

func isImage(file *multipart.FileHeader) bool {
	return strings.HasPrefix(file.Header.Get("Content-Type"), "image/")
}

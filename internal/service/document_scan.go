package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"studentapi/internal/config"
	"studentapi/internal/model"
	"studentapi/internal/repository"
	"studentapi/internal/storage"
	"studentapi/internal/validation"
)

// DocumentScanService stores one scanned identity document per student in object storage.
type DocumentScanService interface {
	// Upload replaces the student's scan with the content of r.
	Upload(ctx context.Context, studentID int64, r io.Reader, filename, contentType string, size int64) *validation.Result[model.DocumentScan]
	// Link returns a pre-signed download URL, or 404 when no scan is stored.
	Link(ctx context.Context, studentID int64) *validation.Result[model.DocumentScanLink]
	// Remove deletes the student's scan. Removing a missing scan succeeds.
	Remove(ctx context.Context, studentID int64) *validation.Result[bool]
}

var _ DocumentScanService = (*documentScanService)(nil)

type documentScanService struct {
	store    storage.Storage
	students repository.StudentRepository
	maxBytes int64
	linkTTL  time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewDocumentScanService(store storage.Storage, students repository.StudentRepository, cfg config.ScanConfig, log *zap.Logger) DocumentScanService {
	return &documentScanService{
		store:    store,
		students: students,
		maxBytes: cfg.MaxBytes,
		linkTTL:  cfg.LinkTTL,
		now:      time.Now,
		log:      log.Named("scans"),
	}
}

// ScanKey is the object key of a student's document scan.
func ScanKey(studentID int64) string {
	return fmt.Sprintf("students/%d/document", studentID)
}

func (s *documentScanService) Upload(ctx context.Context, studentID int64, r io.Reader, filename, contentType string, size int64) *validation.Result[model.DocumentScan] {
	res := validation.NewResult[model.DocumentScan]()
	if res.Merge(validation.StudentID(studentID)) {
		return res
	}
	if r == nil || size <= 0 {
		return res.Fail(http.StatusBadRequest, MsgScanEmpty)
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return res.Fail(http.StatusBadRequest, fmt.Sprintf(MsgScanTooLarge, s.maxBytes))
	}

	st, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return failUnexpected(res, s.log, "get student", err)
	}
	if st == nil {
		return res.Fail(http.StatusBadRequest, MsgStudentNotExist)
	}

	key := ScanKey(studentID)
	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		return failUnexpected(res, s.log, "upload scan", err)
	}

	s.log.Info("scan uploaded", zap.Int64("student_id", studentID), zap.Int64("size", info.Size))
	return res.SetSingle(model.DocumentScan{
		StudentID:   studentID,
		StoragePath: info.Key,
		Filename:    filename,
		Size:        info.Size,
		ContentType: info.ContentType,
		UploadedAt:  info.LastModified.UTC(),
	})
}

func (s *documentScanService) Link(ctx context.Context, studentID int64) *validation.Result[model.DocumentScanLink] {
	res := validation.NewResult[model.DocumentScanLink]()
	if res.Merge(validation.StudentID(studentID)) {
		return res
	}

	key := ScanKey(studentID)
	if _, err := s.store.Stat(ctx, key); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			res.Code = http.StatusNotFound
			return res
		}
		return failUnexpected(res, s.log, "stat scan", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.linkTTL)
	if err != nil {
		return failUnexpected(res, s.log, "presign scan", err)
	}
	return res.SetSingle(model.DocumentScanLink{URL: url, ExpiresAt: s.now().Add(s.linkTTL).UTC()})
}

func (s *documentScanService) Remove(ctx context.Context, studentID int64) *validation.Result[bool] {
	res := validation.NewResult[bool]()
	if res.Merge(validation.StudentID(studentID)) {
		return res
	}

	if err := s.store.Delete(ctx, ScanKey(studentID)); err != nil {
		return failUnexpected(res, s.log, "delete scan", err)
	}
	return res.SetSingle(true)
}

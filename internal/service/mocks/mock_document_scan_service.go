package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"studentapi/internal/model"
	"studentapi/internal/service"
	"studentapi/internal/validation"
)

type MockDocumentScanService struct {
	mock.Mock
}

var _ service.DocumentScanService = (*MockDocumentScanService)(nil)

func (m *MockDocumentScanService) Upload(ctx context.Context, studentID int64, r io.Reader, filename, contentType string, size int64) *validation.Result[model.DocumentScan] {
	args := m.Called(ctx, studentID, r, filename, contentType, size)
	return args.Get(0).(*validation.Result[model.DocumentScan])
}

func (m *MockDocumentScanService) Link(ctx context.Context, studentID int64) *validation.Result[model.DocumentScanLink] {
	args := m.Called(ctx, studentID)
	return args.Get(0).(*validation.Result[model.DocumentScanLink])
}

func (m *MockDocumentScanService) Remove(ctx context.Context, studentID int64) *validation.Result[bool] {
	args := m.Called(ctx, studentID)
	return args.Get(0).(*validation.Result[bool])
}

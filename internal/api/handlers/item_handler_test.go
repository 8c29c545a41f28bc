package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"fridgify/domain"
	"fridgify/internal/utils/storage"
	"fridgify/pkg/item"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItemService struct {
	receivedText   string
	receivedImages []string
}

func (s *fakeItemService) IngestCandidates(_ context.Context, text string, imageNames []string) []domain.ItemCandidate {
	s.receivedText = text
	s.receivedImages = imageNames

	candidates := make([]domain.ItemCandidate, 0, len(imageNames))
	for _, name := range imageNames {
		candidates = append(candidates, domain.ItemCandidate{Name: name, Confidence: 0.4, Source: domain.CandidateSourceImage})
	}
	return candidates
}

func (s *fakeItemService) ConfirmItems(_ context.Context, _ domain.ConfirmItemsRequest, _ string, _ int) ([]domain.ItemResponse, error) {
	return nil, nil
}

func (s *fakeItemService) GetItems(_ context.Context, _ string, _ string) ([]domain.ItemResponse, error) {
	return nil, nil
}

func (s *fakeItemService) GetExpiringItems(_ context.Context, _ string, _ string, _ int) ([]domain.ItemResponse, error) {
	return nil, nil
}

func (s *fakeItemService) UpdateItem(_ context.Context, _ string, _ domain.UpdateItemRequest, _ string, _ int) (domain.ItemResponse, error) {
	return domain.ItemResponse{}, nil
}

func (s *fakeItemService) DeleteItem(_ context.Context, _ string, _ string) error {
	return nil
}

var _ item.ItemService = (*fakeItemService)(nil)

type fakeStorage struct {
	uploaded []string
}

func (s *fakeStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	s.uploaded = append(s.uploaded, file.Filename)
	return folder + "/" + fileName, nil
}

func (s *fakeStorage) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (s *fakeStorage) DeleteFile(_ string) error { return nil }

func (s *fakeStorage) GetPublicLinkKey(objectKey string) string { return objectKey }

func (s *fakeStorage) GetObjectKeyFromLink(link string) string { return link }

var _ storage.AwsS3 = (*fakeStorage)(nil)

func multipartImageRequest(t *testing.T, target string, field string, filename string) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("not a real jpeg"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestIngestImage(t *testing.T) {
	service := &fakeItemService{}
	store := &fakeStorage{}
	handler := NewItemHandler(service, validator.New(), store, 3)

	app := fiber.New()
	app.Post("/image", handler.IngestImage)

	t.Run("single photo yields candidates", func(t *testing.T) {
		resp, err := app.Test(multipartImageRequest(t, "/image", "image", "orange_juice.jpg"))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		assert.Equal(t, []string{"orange_juice.jpg"}, service.receivedImages)
		assert.Empty(t, service.receivedText)
		assert.Equal(t, []string{"orange_juice.jpg"}, store.uploaded, "the photo is stored before extraction")
	})

	t.Run("missing file is rejected", func(t *testing.T) {
		resp, err := app.Test(multipartImageRequest(t, "/image", "wrong_field", "orange_juice.jpg"))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

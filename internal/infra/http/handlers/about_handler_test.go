package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

// MockAboutRepositoryHandler
type MockAboutRepositoryHandler struct {
	mock.Mock
}

func (m *MockAboutRepositoryHandler) Get(ctx context.Context) (*entity.AboutContent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AboutContent), args.Error(1)
}

func (m *MockAboutRepositoryHandler) Put(ctx context.Context, c *entity.AboutContent) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func TestAboutGetReturnsContent(t *testing.T) {
	repo := new(MockAboutRepositoryHandler)
	repo.On("Get", mock.Anything).Return(&entity.AboutContent{
		Headline: "We build with AI",
		Story:    "<p>Founded in a garage.</p>",
	}, nil)

	handler := NewAboutHandler(repo)

	req := httptest.NewRequest("GET", "/about", nil)
	w := httptest.NewRecorder()

	handler.HandleGet(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got entity.AboutContent
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "We build with AI", got.Headline)
}

// The singleton row may never have been written; readers get empty content,
// not an error.
func TestAboutGetUnwrittenSingleton(t *testing.T) {
	repo := new(MockAboutRepositoryHandler)
	repo.On("Get", mock.Anything).Return(&entity.AboutContent{}, nil)

	handler := NewAboutHandler(repo)

	req := httptest.NewRequest("GET", "/about", nil)
	w := httptest.NewRecorder()

	handler.HandleGet(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got entity.AboutContent
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.Headline)
}

func TestAboutPutUpserts(t *testing.T) {
	repo := new(MockAboutRepositoryHandler)

	var saved *entity.AboutContent
	repo.On("Put", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.AboutContent)
	}).Return(nil)

	handler := NewAboutHandler(repo)

	body, _ := json.Marshal(entity.AboutContent{
		Headline: "Updated",
		Story:    "<p>New story.</p>",
		ImageURL: "https://cdn.example.com/team.jpg",
	})
	req := httptest.NewRequest("PUT", "/admin/about", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandlePut(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Updated", saved.Headline)
	assert.Equal(t, "https://cdn.example.com/team.jpg", saved.ImageURL)
}

func TestAboutPutInvalidJSON(t *testing.T) {
	repo := new(MockAboutRepositoryHandler)
	handler := NewAboutHandler(repo)

	req := httptest.NewRequest("PUT", "/admin/about", bytes.NewReader([]byte("{bad")))
	w := httptest.NewRecorder()

	handler.HandlePut(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

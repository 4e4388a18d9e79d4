package workflow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arclight-digital/arclight-backend/internal/usecase"
)

func TestForwardSendsMultipartFields(t *testing.T) {
	var gotName, gotRole, gotFilename string
	var gotResume []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")
		gotRole = r.FormValue("role")

		file, header, err := r.FormFile("resume")
		assert.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		buf := make([]byte, header.Size)
		file.Read(buf)
		gotResume = buf

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	err := client.Forward(context.Background(), server.URL, usecase.RelayPayload{
		Fields: map[string]string{
			"name":    "Dana",
			"role":    "Creative Strategist",
			"message": "",
		},
		Resume: &usecase.RelayAttachment{
			Filename: "dana.pdf",
			Data:     []byte("%PDF-1.4"),
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Dana", gotName)
	assert.Equal(t, "Creative Strategist", gotRole)
	assert.Equal(t, "dana.pdf", gotFilename)
	assert.Equal(t, []byte("%PDF-1.4"), gotResume)
}

// The body goes out as received: a deliberately empty field stays in the
// forwarded form rather than being dropped.
func TestForwardKeepsEmptyFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		values, present := r.MultipartForm.Value["message"]
		assert.True(t, present)
		assert.Equal(t, []string{""}, values)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	err := client.Forward(context.Background(), server.URL, usecase.RelayPayload{
		Fields: map[string]string{"name": "Dana", "message": ""},
	})

	assert.NoError(t, err)
}

func TestForwardNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow disabled", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient()
	err := client.Forward(context.Background(), server.URL, usecase.RelayPayload{
		Fields: map[string]string{"name": "Dana"},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestForwardConnectionRefused(t *testing.T) {
	client := NewClient()
	err := client.Forward(context.Background(), "http://127.0.0.1:1/hook", usecase.RelayPayload{
		Fields: map[string]string{"name": "Dana"},
	})

	assert.Error(t, err)
}

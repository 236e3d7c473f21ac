package handlers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"humspot-backend/internal/services"
)

// Presigner issues pre-signed upload URLs
type Presigner interface {
	PresignUpload(ctx context.Context, req services.UploadRequest) (*services.UploadResponse, error)
}

// UploadHandler handles upload-related HTTP requests
type UploadHandler struct {
	presigner Presigner
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(presigner Presigner) *UploadHandler {
	return &UploadHandler{presigner: presigner}
}

// UploadURL handles POST /upload-url
func (h *UploadHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	endpoint[services.UploadRequest, *services.UploadResponse]{
		name:    "presign upload",
		message: "Upload URL generated successfully",
		bind: func(r *http.Request) (services.UploadRequest, error) {
			var req services.UploadRequest
			err := decodeBody(r, &req)
			return req, err
		},
		run: func(ctx context.Context, in services.UploadRequest) (*services.UploadResponse, error) {
			resp, err := h.presigner.PresignUpload(ctx, in)
			if err != nil {
				return nil, err
			}
			log.Info().
				Str("key", resp.Key).
				Bool("unique", in.IsUnique).
				Msg("Pre-signed URL generated")
			return resp, nil
		},
		payload: func(resp *services.UploadResponse) map[string]any {
			if resp == nil {
				resp = &services.UploadResponse{}
			}
			return map[string]any{
				"uploadURL": resp.UploadURL,
				"key":       resp.Key,
			}
		},
	}.ServeHTTP(w, r)
}

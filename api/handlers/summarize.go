// ABOUTME: Summarize handler for the Huma API
// ABOUTME: Accepts a list of URLs and a topic and returns a summary document

package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"summaries-app-api/api/dto/mappers"
	"summaries-app-api/api/dto/requests"
	"summaries-app-api/api/dto/responses"
	"summaries-app-api/core/errors"
	"summaries-app-api/core/summarize"

	"github.com/danielgtaylor/huma/v2"
)

const insufficientContentSuggestion = "Please ensure you're selecting direct article URLs, not search result pages. Try selecting links that go directly to articles or content pages."

// SummarizeHandler handles summarization requests
type SummarizeHandler struct {
	service *summarize.Service
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(service *summarize.Service) *SummarizeHandler {
	return &SummarizeHandler{service: service}
}

// RegisterRoutes registers all summarize-related routes
func (h *SummarizeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summarize",
		Method:      http.MethodPost,
		Path:        "/summarize",
		Summary:     "Summarize content from URLs",
		Description: "Fetches the given URLs, extracts their readable content and produces a single summary document about the topic",
		Tags:        []string{"Summarize"},
	}, h.Summarize)
}

// SummarizeInput carries the raw request body. Decoding is deliberately
// loose so wrong-typed fields get the documented 400 bodies instead of
// schema validation errors.
type SummarizeInput struct {
	RawBody []byte
}

// SummarizeOutput defines the output for the Summarize operation. Status
// is dynamic so validation failures keep their documented body shapes.
type SummarizeOutput struct {
	Status int
	Body   responses.SummarizeResponse
}

// decodeSummarizeRequest accepts any JSON shape; a field that does not
// decode to its expected type is left zero so the handler's own checks
// report it.
func decodeSummarizeRequest(data []byte) requests.SummarizeRequest {
	var raw struct {
		URLs  json.RawMessage `json:"urls"`
		Topic json.RawMessage `json:"topic"`
	}
	var req requests.SummarizeRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return req
	}
	if len(raw.URLs) > 0 {
		if err := json.Unmarshal(raw.URLs, &req.URLs); err != nil {
			req.URLs = nil
		}
	}
	if len(raw.Topic) > 0 {
		if err := json.Unmarshal(raw.Topic, &req.Topic); err != nil {
			req.Topic = ""
		}
	}
	return req
}

// Summarize handles a summarization request end to end
func (h *SummarizeHandler) Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	body := decodeSummarizeRequest(input.RawBody)

	if len(body.URLs) == 0 {
		return &SummarizeOutput{
			Status: http.StatusBadRequest,
			Body:   responses.SummarizeResponse{Error: "URLs array is required and cannot be empty"},
		}, nil
	}
	if strings.TrimSpace(body.Topic) == "" {
		return &SummarizeOutput{
			Status: http.StatusBadRequest,
			Body:   responses.SummarizeResponse{Error: "Topic is required"},
		}, nil
	}

	doc, err := h.service.Summarize(ctx, body.URLs, body.Topic)
	if err != nil {
		var contentErr *errors.InsufficientContentError
		if stderrors.As(err, &contentErr) {
			return &SummarizeOutput{
				Status: http.StatusBadRequest,
				Body: responses.SummarizeResponse{
					Error:      "Failed to extract meaningful content from any of the provided URLs",
					Details:    mappers.ToSourceDiagnosticResponses(contentErr.Diagnostics),
					Suggestion: insufficientContentSuggestion,
				},
			}, nil
		}

		return &SummarizeOutput{
			Status: http.StatusInternalServerError,
			Body: responses.SummarizeResponse{
				Error:   "Failed to summarize content",
				Message: err.Error(),
			},
		}, nil
	}

	return &SummarizeOutput{
		Status: http.StatusOK,
		Body: responses.SummarizeResponse{
			Success: true,
			Topic:   doc.Topic,
			Summary: doc.Body,
			Sources: mappers.ToSourceRefResponses(doc.Sources),
			Note:    doc.Note,
		},
	}, nil
}

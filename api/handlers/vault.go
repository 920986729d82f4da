// ABOUTME: Vault handler for the Huma API
// ABOUTME: Provides list, save, delete and export endpoints for saved summaries

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"summaries-app-api/api/dto/mappers"
	"summaries-app-api/api/dto/requests"
	"summaries-app-api/api/dto/responses"
	"summaries-app-api/core/domain"
	"summaries-app-api/core/errors"
	"summaries-app-api/core/vault"

	"github.com/danielgtaylor/huma/v2"
)

// VaultHandler handles vault requests
type VaultHandler struct {
	service *vault.Service
}

// NewVaultHandler creates a new vault handler
func NewVaultHandler(service *vault.Service) *VaultHandler {
	return &VaultHandler{service: service}
}

// RegisterRoutes registers all vault-related routes
func (h *VaultHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listVaultItems",
		Method:      http.MethodGet,
		Path:        "/vault/{userId}",
		Summary:     "List vault items",
		Description: "Returns all saved summaries for a user in insertion order",
		Tags:        []string{"Vault"},
	}, h.ListItems)

	huma.Register(api, huma.Operation{
		OperationID: "saveVaultItem",
		Method:      http.MethodPost,
		Path:        "/vault/{userId}",
		Summary:     "Save a summary to the vault",
		Description: "Appends a summary to the user's vault and returns it with its assigned ID",
		Tags:        []string{"Vault"},
	}, h.SaveItem)

	huma.Register(api, huma.Operation{
		OperationID: "deleteVaultItem",
		Method:      http.MethodDelete,
		Path:        "/vault/{userId}/{itemId}",
		Summary:     "Delete a vault item",
		Description: "Removes a saved summary from the user's vault",
		Tags:        []string{"Vault"},
	}, h.DeleteItem)

	huma.Register(api, huma.Operation{
		OperationID: "exportVaultItem",
		Method:      http.MethodGet,
		Path:        "/vault/{userId}/{itemId}/export",
		Summary:     "Export a vault item",
		Description: "Downloads a saved summary as a text or markdown file",
		Tags:        []string{"Vault"},
	}, h.ExportItem)
}

// ListVaultItemsInput defines the input for the ListItems operation
type ListVaultItemsInput struct {
	UserID string `path:"userId" doc:"User whose vault to list"`
}

// ListVaultItemsOutput defines the output for the ListItems operation
type ListVaultItemsOutput struct {
	Status int
	Body   responses.VaultListResponse
}

// ListItems returns all items in the user's vault
func (h *VaultHandler) ListItems(ctx context.Context, input *ListVaultItemsInput) (*ListVaultItemsOutput, error) {
	items, err := h.service.ListItems(ctx, input.UserID)
	if err != nil {
		if errors.IsValidation(err) {
			return &ListVaultItemsOutput{
				Status: http.StatusBadRequest,
				Body:   responses.VaultListResponse{Error: "User ID is required"},
			}, nil
		}
		return &ListVaultItemsOutput{
			Status: http.StatusInternalServerError,
			Body: responses.VaultListResponse{
				Error:   "Failed to retrieve vault items",
				Message: err.Error(),
			},
		}, nil
	}

	dto := mappers.ToVaultItemResponses(items)
	return &ListVaultItemsOutput{
		Status: http.StatusOK,
		Body: responses.VaultListResponse{
			Success: true,
			Items:   &dto,
		},
	}, nil
}

// SaveVaultItemInput defines the input for the SaveItem operation
type SaveVaultItemInput struct {
	UserID string `path:"userId" doc:"User whose vault to append to"`
	Body   requests.SaveVaultItemRequest
}

// SaveVaultItemOutput defines the output for the SaveItem operation
type SaveVaultItemOutput struct {
	Status int
	Body   responses.VaultSaveResponse
}

// SaveItem appends a summary to the user's vault
func (h *VaultHandler) SaveItem(ctx context.Context, input *SaveVaultItemInput) (*SaveVaultItemOutput, error) {
	if strings.TrimSpace(input.Body.Topic) == "" || strings.TrimSpace(input.Body.Summary) == "" {
		return &SaveVaultItemOutput{
			Status: http.StatusBadRequest,
			Body:   responses.VaultSaveResponse{Error: "Topic and summary are required"},
		}, nil
	}

	saved, err := h.service.SaveItem(ctx, input.UserID, domain.VaultItem{
		Topic:   input.Body.Topic,
		Summary: input.Body.Summary,
		Sources: mappers.FromVaultSourceRefs(input.Body.Sources),
	})
	if err != nil {
		if errors.IsValidation(err) {
			return &SaveVaultItemOutput{
				Status: http.StatusBadRequest,
				Body:   responses.VaultSaveResponse{Error: "User ID is required"},
			}, nil
		}
		return &SaveVaultItemOutput{
			Status: http.StatusInternalServerError,
			Body: responses.VaultSaveResponse{
				Error:   "Failed to save vault item",
				Message: err.Error(),
			},
		}, nil
	}

	dto := mappers.ToVaultItemResponse(saved)
	return &SaveVaultItemOutput{
		Status: http.StatusOK,
		Body: responses.VaultSaveResponse{
			Success: true,
			Item:    &dto,
		},
	}, nil
}

// DeleteVaultItemInput defines the input for the DeleteItem operation
type DeleteVaultItemInput struct {
	UserID string `path:"userId" doc:"User whose vault to delete from"`
	ItemID string `path:"itemId" doc:"Item to delete"`
}

// DeleteVaultItemOutput defines the output for the DeleteItem operation
type DeleteVaultItemOutput struct {
	Status int
	Body   responses.VaultDeleteResponse
}

// DeleteItem removes an item from the user's vault. Deleting an unknown
// ID still reports success.
func (h *VaultHandler) DeleteItem(ctx context.Context, input *DeleteVaultItemInput) (*DeleteVaultItemOutput, error) {
	if err := h.service.DeleteItem(ctx, input.UserID, input.ItemID); err != nil {
		if errors.IsValidation(err) {
			return &DeleteVaultItemOutput{
				Status: http.StatusBadRequest,
				Body:   responses.VaultDeleteResponse{Error: "User ID and Item ID are required"},
			}, nil
		}
		return &DeleteVaultItemOutput{
			Status: http.StatusInternalServerError,
			Body: responses.VaultDeleteResponse{
				Error:   "Failed to delete vault item",
				Message: err.Error(),
			},
		}, nil
	}

	return &DeleteVaultItemOutput{
		Status: http.StatusOK,
		Body: responses.VaultDeleteResponse{
			Success: true,
			Message: "Item deleted successfully",
		},
	}, nil
}

// ExportVaultItemInput defines the input for the ExportItem operation
type ExportVaultItemInput struct {
	UserID string `path:"userId" doc:"User whose vault to export from"`
	ItemID string `path:"itemId" doc:"Item to export"`
	Format string `query:"format" enum:"txt,md" default:"txt" doc:"Download format"`
}

// ExportVaultItemOutput defines the output for the ExportItem operation
type ExportVaultItemOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// ExportItem downloads a saved summary as a standalone document
func (h *VaultHandler) ExportItem(ctx context.Context, input *ExportVaultItemInput) (*ExportVaultItemOutput, error) {
	item, err := h.service.GetItem(ctx, input.UserID, input.ItemID)
	if err != nil {
		return nil, toHumaError(err)
	}

	format := input.Format
	if format == "" {
		format = "txt"
	}

	contentType := "text/plain; charset=utf-8"
	body := item.Summary
	if format == "md" {
		contentType = "text/markdown; charset=utf-8"
		body = fmt.Sprintf("# %s\n\n%s\n", item.Topic, item.Summary)
	}

	filename := vault.FormatFilename(item.Topic, format)
	return &ExportVaultItemOutput{
		ContentType:        contentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", filename),
		Body:               []byte(body),
	}, nil
}

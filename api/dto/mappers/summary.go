// ABOUTME: Mappers converting domain models to API response DTOs
// ABOUTME: Keeps wire shapes decoupled from core types

package mappers

import (
	"summaries-app-api/api/dto/requests"
	"summaries-app-api/api/dto/responses"
	"summaries-app-api/core/domain"
	"summaries-app-api/core/errors"
)

// ToSourceRefResponses converts domain source references to DTOs
func ToSourceRefResponses(refs []domain.SourceRef) []responses.SourceRefResponse {
	out := make([]responses.SourceRefResponse, len(refs))
	for i, ref := range refs {
		out[i] = responses.SourceRefResponse{
			URL:   ref.URL,
			Title: ref.Title,
		}
	}
	return out
}

// ToSourceDiagnosticResponses converts extraction diagnostics to DTOs
func ToSourceDiagnosticResponses(diags []errors.SourceDiagnostic) []responses.SourceDiagnosticResponse {
	out := make([]responses.SourceDiagnosticResponse, len(diags))
	for i, d := range diags {
		out[i] = responses.SourceDiagnosticResponse{
			URL:           d.URL,
			Title:         d.Title,
			ContentLength: d.ContentLength,
			Error:         d.Reason,
		}
	}
	return out
}

// ToVaultItemResponse converts a domain vault item to a DTO
func ToVaultItemResponse(item domain.VaultItem) responses.VaultItemResponse {
	sources := item.Sources
	if sources == nil {
		sources = []domain.SourceRef{}
	}
	return responses.VaultItemResponse{
		ID:        item.ID,
		Topic:     item.Topic,
		Summary:   item.Summary,
		Sources:   ToSourceRefResponses(sources),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToVaultItemResponses converts a list of domain vault items to DTOs
func ToVaultItemResponses(items []domain.VaultItem) []responses.VaultItemResponse {
	out := make([]responses.VaultItemResponse, len(items))
	for i, item := range items {
		out[i] = ToVaultItemResponse(item)
	}
	return out
}

// FromVaultSourceRefs converts request source references to domain refs
func FromVaultSourceRefs(refs []requests.VaultSourceRef) []domain.SourceRef {
	out := make([]domain.SourceRef, len(refs))
	for i, ref := range refs {
		out[i] = domain.SourceRef{
			URL:   ref.URL,
			Title: ref.Title,
		}
	}
	return out
}

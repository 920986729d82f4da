// Package core contains the business logic for the Summaries API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Source, SummaryDocument, VaultItem)
// - scrape: Page fetching and readable-content extraction
// - compose: Deterministic summary composition from extracted sources
// - summarize: The scrape-filter-summarize pipeline
// - vault: Per-user storage of saved summaries
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies beyond HTML parsing
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "summaries-app-api/core/interfaces"
//	    "summaries-app-api/core/scrape"
//	    "summaries-app-api/core/summarize"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	scraper := scrape.NewService(deps)
//	service := summarize.NewService(deps, scraper, nil)
//
//	// Summarize pages
//	doc, err := service.Summarize(ctx, []string{
//	    "https://example.com/article",
//	}, "Example Topic")
package core

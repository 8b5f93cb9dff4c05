// Package fakestore provides an HTTP client for a fakestoreapi-compatible
// product catalog API.
//
// # Overview
//
// This package defines the remote side of the dashboard: listing the product
// collection and submitting create, update, and delete requests. It handles
// HTTP communication, JSON serialization, and pre-submission validation of
// product drafts. It never mutates local state; callers apply confirmed
// results to their own stores.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Product, Rating, and Draft structures plus draft validation
//   - errors.go: APIError and the operation kinds used for user messaging
//
// # Client Usage
//
// Create a client using the API URL from configuration:
//
//	client, err := fakestore.NewClient("https://fakestoreapi.com", 10*time.Second)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	products, err := client.List(ctx)
//	if err != nil {
//		log.Printf("list failed: %v", err)
//	}
//
//	created, err := client.Create(ctx, fakestore.Draft{Title: "Mug", Price: 9.99})
//	if err != nil {
//		log.Printf("create failed: %v", err)
//	}
//
// # API Endpoints
//
//   - GET    /products:      full product collection
//   - POST   /products:      create from a draft; the server assigns the ID
//   - PUT    /products/{id}: replace the identified product's fields
//   - DELETE /products/{id}: remove the identified product
//
// # Error Handling
//
// Any non-2xx status or transport failure is wrapped in *APIError carrying
// the operation kind (list, create, update, delete), so the UI can show an
// operation-specific message. Failure response bodies are not parsed.
// Failures are logged for diagnostics and always returned to the caller;
// the client never retries on its own.
//
// Drafts are validated before any request is issued: a blank title or a
// non-positive price is rejected locally and the wire is never touched.
package fakestore

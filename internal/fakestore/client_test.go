package fakestore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com:1234")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_ListDecodesProducts(t *testing.T) {
	t.Parallel()

	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		if r.Method != http.MethodGet || r.URL.Path != "/products" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Product{
			{ID: 1, Title: "Backpack", Price: 109.95, Rating: &Rating{Rate: 3.9, Count: 120}},
			{ID: 2, Title: "T-Shirt", Price: 22.3},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	products, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(products) != 2 || products[0].ID != 1 || products[1].Title != "T-Shirt" {
		t.Fatalf("List = %#v, want 2 decoded products", products)
	}
	if products[0].Rating == nil || products[0].Rating.Count != 120 {
		t.Fatalf("rating = %#v, want count 120", products[0].Rating)
	}
	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "shopfront/") {
		t.Fatalf("User-Agent = %q, want shopfront/*", gotUserAgent)
	}
}

func TestClient_CreateAndUpdateSendJSONBodies(t *testing.T) {
	t.Parallel()

	var gotCreate Draft
	var gotUpdatePath string
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/products":
			gotContentType = r.Header.Get("Content-Type")
			if err := json.NewDecoder(r.Body).Decode(&gotCreate); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			_ = json.NewEncoder(w).Encode(Product{ID: 21, Title: gotCreate.Title, Price: gotCreate.Price})
		case r.Method == http.MethodPut:
			gotUpdatePath = r.URL.Path
			var d Draft
			if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			_ = json.NewEncoder(w).Encode(Product{ID: 5, Title: d.Title, Price: d.Price})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	created, err := c.Create(context.Background(), Draft{Title: "Lamp", Price: 14.5})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 21 || created.Title != "Lamp" {
		t.Fatalf("Create = %#v, want server-assigned id 21", created)
	}
	if gotCreate.Title != "Lamp" || gotCreate.Price != 14.5 {
		t.Fatalf("create body = %#v, want draft echoed", gotCreate)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}

	updated, err := c.Update(context.Background(), 5, Draft{Title: "Lamp XL", Price: 19.5})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != 5 || updated.Title != "Lamp XL" {
		t.Fatalf("Update = %#v, want confirmed record", updated)
	}
	if gotUpdatePath != "/products/5" {
		t.Fatalf("update path = %q, want /products/5", gotUpdatePath)
	}
}

func TestClient_DeleteHitsResourcePath(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/products/7" {
		t.Fatalf("request = %s %s, want DELETE /products/7", gotMethod, gotPath)
	}
}

func TestClient_NonSuccessStatusYieldsTypedError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.List(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("List error = %v, want *APIError", err)
	}
	if apiErr.Op != OpList || apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("APIError = %#v, want op=list status=500", apiErr)
	}

	err = c.Delete(context.Background(), 1)
	apiErr = nil
	if !errors.As(err, &apiErr) || apiErr.Op != OpDelete {
		t.Fatalf("Delete error = %v, want *APIError op=delete", err)
	}
}

func TestClient_ConnectionFailureYieldsTypedError(t *testing.T) {
	t.Parallel()

	// Reserve a port, then close it so the connection is refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	c, err := NewClient(addr, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.List(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("List error = %v, want *APIError", err)
	}
	if apiErr.Op != OpList || apiErr.Status != 0 {
		t.Fatalf("APIError = %#v, want op=list status=0", apiErr)
	}
}

func TestClient_InvalidDraftNeverReachesServer(t *testing.T) {
	t.Parallel()

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := c.Create(context.Background(), Draft{Title: "", Price: 10}); err == nil {
		t.Fatal("Create accepted an empty title")
	}
	if _, err := c.Update(context.Background(), 5, Draft{Title: "Lamp", Price: -1}); err == nil {
		t.Fatal("Update accepted a negative price")
	}
	if hits != 0 {
		t.Fatalf("server hits = %d, want 0 for invalid drafts", hits)
	}
}

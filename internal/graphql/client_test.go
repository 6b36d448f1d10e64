package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var ctx = context.Background()

func TestExecute(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Error(err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"ok": true}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	data, err := client.Execute(ctx, "query { ok }", map[string]any{"x": 1.0}, "sometoken")
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "Bearer sometoken" {
		t.Errorf("unexpected Authorization header: %q", gotAuth)
	}
	expectedPayload := map[string]any{
		"query":     "query { ok }",
		"variables": map[string]any{"x": 1.0},
	}
	if diff := cmp.Diff(expectedPayload, gotPayload); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(map[string]any{"ok": true}, data); diff != "" {
		t.Error(diff)
	}
}

func TestExecuteAnonymous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("anonymous call sent Authorization header: %q", auth)
		}
		w.Write([]byte(`{"data": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	if _, err := client.Execute(ctx, "query { ok }", nil, ""); err != nil {
		t.Fatal(err)
	}
}

func TestExecuteServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, nil)
	_, err := client.Execute(ctx, "query { ok }", nil, "")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestExecuteInvalidToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Execute(ctx, "query { ok }", nil, "expiredtoken")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExecuteGraphQLErrors(t *testing.T) {
	// errors win even when data is present as well
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"partial": 1}, "errors": [{"message": "boom"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Execute(ctx, "query { partial }", nil, "")

	var gqlErr *Error
	if !errors.As(err, &gqlErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if len(gqlErr.Errors) != 1 {
		t.Errorf("expected the raw error list to be carried, got %v", gqlErr.Errors)
	}
}

func TestQueryAppendsViewer(t *testing.T) {
	var document string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		document, _ = payload["query"].(string)
		w.Write([]byte(`{"data": {"viewer": null}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	data, err := client.Query(ctx, "authors { totalCount }", nil, "")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(document, "authors { totalCount }") || !strings.Contains(document, "viewer {") {
		t.Errorf("document missing body or viewer fragment: %q", document)
	}
	if _, ok := data["viewer"]; !ok {
		t.Error("viewer key missing from data")
	}
}

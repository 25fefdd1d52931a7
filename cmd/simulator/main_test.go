package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequest_SetsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("Authorization") != "Bearer token-123" {
			t.Errorf("Expected Authorization header, got %s", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := request(http.MethodPost, server.URL, "token-123", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequest_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("Expected no Authorization header, got %s", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := request(http.MethodGet, server.URL, "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("Expected /auth/login, got %s", r.URL.Path)
		}
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "manager@example.com" {
			t.Errorf("Expected email in body, got %s", creds["email"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Login successful",
			"data":    map[string]string{"token": "jwt-token"},
		})
	}))
	defer server.Close()

	token, err := login(server.URL, "manager@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "jwt-token" {
		t.Errorf("Expected token 'jwt-token', got %s", token)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := login(server.URL, "manager@example.com", "wrong")
	if err == nil {
		t.Error("expected error for bad credentials, got nil")
	}
}

func TestLogin_MissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{},
		})
	}))
	defer server.Close()

	_, err := login(server.URL, "manager@example.com", "secret")
	if err == nil {
		t.Error("expected error when response has no token, got nil")
	}
}

func TestCreateHire_DecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hires" {
			t.Errorf("Expected /hires, got %s", r.URL.Path)
		}
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["passenger_name"] == "" {
			t.Error("Expected passenger_name in request body")
		}
		if body["pickup_location"] == body["drop_location"] {
			t.Error("Pickup and drop locations should differ")
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id":         "64f000000000000000000001",
				"hire_id":    "HR-0001",
				"status":     "active",
				"hire_price": 4500.0,
			},
		})
	}))
	defer server.Close()

	hire, err := createHire(server.URL, "token-123")
	if err != nil {
		t.Fatalf("createHire failed: %v", err)
	}
	if hire.HireID != "HR-0001" {
		t.Errorf("Expected hire ID HR-0001, got %s", hire.HireID)
	}
	if hire.Status != "active" {
		t.Errorf("Expected status active, got %s", hire.Status)
	}
}

func TestCreateHire_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := createHire(server.URL, "token-123")
	if err == nil {
		t.Error("expected error for server error, got nil")
	}
}

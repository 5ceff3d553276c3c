// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/databiz/models"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	// Wrap with logging middleware
	wrappedHandler := WithLogging(testHandler)

	// Create test request and recorder
	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	// Execute
	wrappedHandler(w, req)

	// Verify handler was called
	if !handlerCalled {
		t.Error("Expected handler to be called")
	}

	// Verify response was written correctly
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	// Test that logging doesn't interfere with various response codes
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"id":"123"}`},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/api/test", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestWithLogging_FlushPassesThrough(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		if !ok {
			t.Fatal("Expected wrapped writer to implement http.Flusher")
		}
		w.Write([]byte("data: x\n\n"))
		f.Flush()
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/api/slides/stream", nil))

	if !w.Flushed {
		t.Error("Expected underlying recorder to be flushed")
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "ok response",
			statusCode: http.StatusOK,
			data:       models.OKResponse{OK: true},
			expected:   `{"ok":true}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "email and message required"},
			expected:   `{"error":"email and message required"}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			// Check status code
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			// Check Content-Type header
			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Check body (trim newline added by Encode)
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		message    string
	}{
		{"bad request", http.StatusBadRequest, "name and email required"},
		{"method not allowed", http.StatusMethodNotAllowed, "POST required"},
		{"internal error", http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			// Check status code
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			// Check Content-Type
			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			// Envelope is exactly {"error": message}
			body := strings.TrimSpace(w.Body.String())
			expected := `{"error":"` + tc.message + `"}`
			if body != expected {
				t.Errorf("Expected body '%s', got '%s'", expected, body)
			}
		})
	}
}

func TestRequirePOST(t *testing.T) {
	for _, method := range []string{"GET", "PUT", "DELETE", "PATCH"} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/join", nil)
			w := httptest.NewRecorder()

			if RequirePOST(w, req) {
				t.Fatal("Expected RequirePOST to reject", method)
			}
			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405, got %d", w.Code)
			}
			if w.Header().Get("Allow") != "POST" {
				t.Errorf("Expected Allow: POST, got '%s'", w.Header().Get("Allow"))
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			if resp.Error != "POST required" {
				t.Errorf("Expected 'POST required', got '%s'", resp.Error)
			}
		})
	}

	t.Run("POST passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/join", nil)
		w := httptest.NewRecorder()

		if !RequirePOST(w, req) {
			t.Fatal("Expected POST to pass")
		}
		if w.Body.Len() != 0 {
			t.Error("Expected nothing written for POST")
		}
	})
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := `{"name":"Asha","email":"asha@example.com"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		w := httptest.NewRecorder()

		var parsed models.JoinRequest
		err := ParseJSONBody(w, req, &parsed)

		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Name != "Asha" {
			t.Errorf("Expected name 'Asha', got '%s'", parsed.Name)
		}
		if parsed.Email != "asha@example.com" {
			t.Errorf("Expected email 'asha@example.com', got '%s'", parsed.Email)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		body := `{invalid json}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		w := httptest.NewRecorder()

		var parsed models.JoinRequest
		err := ParseJSONBody(w, req, &parsed)

		if err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body is an empty object", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))
		w := httptest.NewRecorder()

		var parsed models.JoinRequest
		err := ParseJSONBody(w, req, &parsed)

		if err != nil {
			t.Fatalf("Expected no error for empty body, got: %v", err)
		}
		if parsed != (models.JoinRequest{}) {
			t.Errorf("Expected zero value, got %+v", parsed)
		}
	})

	t.Run("wrong field type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":42}`))
		w := httptest.NewRecorder()

		var parsed models.ContactRequest
		if err := ParseJSONBody(w, req, &parsed); err == nil {
			t.Error("Expected error for non-string email")
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		big := `{"message":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(big))
		w := httptest.NewRecorder()

		var parsed models.ContactRequest
		if err := ParseJSONBody(w, req, &parsed); err == nil {
			t.Error("Expected error for oversized body")
		}
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		bodies := []string{
			`{"email":"a@b.com","message":"hi"} garbage`,
			`{"email":"a@b.com","message":"hi"}{}`,
			`{"email":"a@b.com","message":"hi"} [1]`,
		}
		for _, body := range bodies {
			req := httptest.NewRequest("POST", "/", strings.NewReader(body))
			w := httptest.NewRecorder()

			var parsed models.ContactRequest
			if err := ParseJSONBody(w, req, &parsed); !errors.Is(err, ErrTrailingData) {
				t.Errorf("Expected ErrTrailingData for %q, got %v", body, err)
			}
		}
	})

	t.Run("trailing whitespace allowed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("{\"email\":\"a@b.com\"}\n  \n"))
		w := httptest.NewRecorder()

		var parsed models.ContactRequest
		if err := ParseJSONBody(w, req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Email != "a@b.com" {
			t.Errorf("Expected email 'a@b.com', got '%s'", parsed.Email)
		}
	})

	t.Run("extra fields ignored", func(t *testing.T) {
		body := `{"email":"a@b.com","message":"hi","unknown_field":"ignored"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		w := httptest.NewRecorder()

		var parsed models.ContactRequest
		err := ParseJSONBody(w, req, &parsed)

		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Message != "hi" {
			t.Errorf("Expected message 'hi', got '%s'", parsed.Message)
		}
	})

	t.Run("body is closed after parsing", func(t *testing.T) {
		body := `{"email":"a@b.com"}`
		bodyReader := io.NopCloser(bytes.NewReader([]byte(body)))
		req := httptest.NewRequest("POST", "/", bodyReader)
		w := httptest.NewRecorder()

		var parsed models.ContactRequest
		_ = ParseJSONBody(w, req, &parsed)

		remaining, _ := io.ReadAll(req.Body)
		if len(remaining) > 0 {
			t.Error("Expected body to be consumed/closed")
		}
	})
}

func TestCORS(t *testing.T) {
	// Create a simple handler that returns OK
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	t.Run("wildcard origin", func(t *testing.T) {
		corsHandler := CORS([]string{"*"})(nextHandler)

		req := httptest.NewRequest("GET", "/api/magazines", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("Expected '*', got '%s'", w.Header().Get("Access-Control-Allow-Origin"))
		}
	})

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		corsHandler := CORS([]string{"http://localhost:5173"})(nextHandler)

		req := httptest.NewRequest("OPTIONS", "/api/contact", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		// Preflight is answered without calling next
		if w.Body.String() == "handled" {
			t.Error("Expected preflight to be answered by CORS middleware")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
			t.Error("Expected POST in allowed methods")
		}
	})

	t.Run("disallowed origin gets no CORS headers", func(t *testing.T) {
		corsHandler := CORS([]string{"https://databiz.in"})(nextHandler)

		req := httptest.NewRequest("GET", "/api/events", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Error("Expected no Access-Control-Allow-Origin for disallowed origin")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs (comma separated)",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100, 10.0.0.1, 172.16.0.1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs (space after comma)",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18, 150.172.238.178"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "IPv6 RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "[::1]:12345",
			expectedIP: "[::1]", // Implementation strips port after last colon
		},
		{
			name:       "IPv6 in X-Forwarded-For",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "2001:db8::1",
		},
		{
			name:       "empty X-Forwarded-For falls through to RemoteAddr",
			headers:    map[string]string{"X-Forwarded-For": ""},
			remoteAddr: "10.0.0.5:8080",
			expectedIP: "10.0.0.5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			result := GetClientIP(req)

			if result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}

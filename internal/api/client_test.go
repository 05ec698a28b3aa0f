package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEndpoint(t *testing.T) {
	c, err := NewClient(ClientOptions{BaseURL: "https://api.example.com/v2/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	got := c.endpoint("/acts/"+actorPath("user/leads finder")+"/runs", url.Values{"token": {"t"}})
	want := "https://api.example.com/v2/acts/user~leads%20finder/runs?token=t"
	if got != want {
		t.Errorf("endpoint() = %q, want %q", got, want)
	}
}

func TestNewClientRejectsRelativeBaseURL(t *testing.T) {
	if _, err := NewClient(ClientOptions{BaseURL: "api/v2"}); err == nil {
		t.Fatal("expected error for relative base url")
	}
}

func TestDoMapsStatusCodes(t *testing.T) {
	long := strings.Repeat("x", 200)
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `[]`,
			check: func(t *testing.T, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			},
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"error":{"type":"token-not-valid"}}`,
			check: func(t *testing.T, err error) {
				var ae *AuthError
				if !errors.As(err, &ae) {
					t.Fatalf("expected *AuthError, got %T: %v", err, err)
				}
			},
		},
		{
			name:   "server error truncated",
			status: http.StatusBadGateway,
			body:   long,
			check: func(t *testing.T, err error) {
				var re *RemoteError
				if !errors.As(err, &re) {
					t.Fatalf("expected *RemoteError, got %T: %v", err, err)
				}
				if re.StatusCode != http.StatusBadGateway {
					t.Errorf("StatusCode = %d, want %d", re.StatusCode, http.StatusBadGateway)
				}
				if len(re.Snippet) != snippetLen {
					t.Errorf("snippet length = %d, want %d", len(re.Snippet), snippetLen)
				}
				if !strings.HasPrefix(err.Error(), "API Error (502): xxx") {
					t.Errorf("Error() = %q", err.Error())
				}
			},
		},
		{
			name:   "token redacted from body",
			status: http.StatusBadRequest,
			body:   `bad token secret-token here`,
			check: func(t *testing.T, err error) {
				if strings.Contains(err.Error(), "secret-token") {
					t.Errorf("token leaked: %q", err.Error())
				}
			},
		},
		{
			name:   "token across the snippet limit",
			status: http.StatusBadRequest,
			body:   strings.Repeat("x", 130) + "secret-token" + strings.Repeat("y", 40),
			check: func(t *testing.T, err error) {
				var re *RemoteError
				if !errors.As(err, &re) {
					t.Fatalf("expected *RemoteError, got %T: %v", err, err)
				}
				if strings.Contains(re.Snippet, "secret") {
					t.Errorf("token prefix leaked: %q", re.Snippet)
				}
				if !strings.Contains(re.Snippet, "<redacted>") {
					t.Errorf("snippet = %q, want redaction marker", re.Snippet)
				}
			},
		},
		{
			name:   "multibyte body cut on rune boundary",
			status: http.StatusInternalServerError,
			body:   strings.Repeat("é", 200),
			check: func(t *testing.T, err error) {
				var re *RemoteError
				if !errors.As(err, &re) {
					t.Fatalf("expected *RemoteError, got %T: %v", err, err)
				}
				if !utf8.ValidString(re.Snippet) {
					t.Errorf("snippet is not valid UTF-8: %q", re.Snippet)
				}
				if n := utf8.RuneCountInString(re.Snippet); n != snippetLen {
					t.Errorf("snippet runes = %d, want %d", n, snippetLen)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
					t.Errorf("Authorization = %q", got)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := NewClient(ClientOptions{BaseURL: srv.URL})
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			_, err = c.do(context.Background(), "test", http.MethodGet, "/x", nil, "secret-token", nil)
			tt.check(t, err)
		})
	}
}

func TestRedactURLError(t *testing.T) {
	err := &url.Error{Op: "Get", URL: "https://h/x?token=abc%2Fdef", Err: errors.New("boom")}
	got := redactURLError(err, "abc/def").Error()
	if strings.Contains(got, "abc") {
		t.Errorf("token not redacted: %q", got)
	}
}

package slack

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestMatchAuthError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "invalid_auth response", err: slack.SlackErrorResponse{Err: "invalid_auth"}, wantCode: "invalid_auth"},
		{name: "token_expired response", err: slack.SlackErrorResponse{Err: "token_expired"}, wantCode: "token_expired"},
		{name: "token_revoked response", err: slack.SlackErrorResponse{Err: "token_revoked"}, wantCode: "token_revoked"},
		{name: "wrapped not_authed", err: fmt.Errorf("history: %w", slack.SlackErrorResponse{Err: "not_authed"}), wantCode: "not_authed"},
		{name: "channel_not_found", err: slack.SlackErrorResponse{Err: "channel_not_found"}, wantCode: ""},
		{name: "nil error", err: nil, wantCode: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchAuthError(tt.err)
			if tt.wantCode == "" {
				if got != nil {
					t.Errorf("matchAuthError() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("matchAuthError() = nil, want AuthError")
			}
			if got.Code != tt.wantCode {
				t.Errorf("matchAuthError().Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != authErrorCodes[tt.wantCode] {
				t.Errorf("matchAuthError().Message = %q, want %q", got.Message, authErrorCodes[tt.wantCode])
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Run("auth error is replaced and logged", func(t *testing.T) {
		logger := newTestLogger()

		wrapped := WrapError(logger.Logger, "conversations.history", slack.SlackErrorResponse{Err: "invalid_auth"})

		var authErr *AuthError
		if !errors.As(wrapped, &authErr) {
			t.Fatalf("expected AuthError, got %T", wrapped)
		}
		if authErr.Code != "invalid_auth" {
			t.Errorf("Code: got %q, want %q", authErr.Code, "invalid_auth")
		}
		if !logger.HasMessage("Slack authentication failed") {
			t.Errorf("expected auth failure to be logged, got %v", logger.AllMessages())
		}
	})

	t.Run("other errors keep their cause", func(t *testing.T) {
		cause := slack.SlackErrorResponse{Err: "channel_not_found"}

		wrapped := WrapError(zap.NewNop(), "conversations.history", cause)

		if got, want := wrapped.Error(), "conversations.history: channel_not_found"; got != want {
			t.Errorf("error string: got %q, want %q", got, want)
		}
		var slackErr slack.SlackErrorResponse
		if !errors.As(wrapped, &slackErr) {
			t.Error("expected wrapped error to unwrap to SlackErrorResponse")
		}
	})

	t.Run("nil", func(t *testing.T) {
		if wrapped := WrapError(zap.NewNop(), "conversations.history", nil); wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestAuthError_Error(t *testing.T) {
	err := &AuthError{Code: "invalid_auth", Message: "Test message"}

	want := "SLACK AUTHENTICATION ERROR: Test message (code: invalid_auth)"
	if got := err.Error(); got != want {
		t.Errorf("Error(): got %q, want %q", got, want)
	}
}

func TestErrorFields(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind string
		wantKeys []string
	}{
		{
			name:     "status code",
			err:      slack.StatusCodeError{Code: 500, Status: "500 Internal Server Error"},
			wantKind: "http",
			wantKeys: []string{"status", "status_text"},
		},
		{
			name:     "rate limited",
			err:      &slack.RateLimitedError{RetryAfter: 30 * time.Second},
			wantKind: "http",
			wantKeys: []string{"status", "retry_after"},
		},
		{
			name: "api error body",
			err: slack.SlackErrorResponse{
				Err:              "invalid_cursor",
				ResponseMetadata: slack.ResponseMetadata{Messages: []string{"[ERROR] bad cursor"}},
			},
			wantKind: "api",
			wantKeys: []string{"slack_error", "messages", "warnings"},
		},
		{
			name:     "transport",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: "transport",
			wantKeys: []string{"error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := zapcore.NewMapObjectEncoder()
			for _, f := range errorFields(tt.err) {
				f.AddTo(enc)
			}
			if got := enc.Fields["kind"]; got != tt.wantKind {
				t.Errorf("kind: got %v, want %q", got, tt.wantKind)
			}
			for _, key := range tt.wantKeys {
				if _, ok := enc.Fields[key]; !ok {
					t.Errorf("missing field %q in %v", key, enc.Fields)
				}
			}
		})
	}
}

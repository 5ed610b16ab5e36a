package slack

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
	"go.mcconachie.co/slack-history-csv/internal/config"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is the number of messages requested per history page
	DefaultPageSize = 100
	// DefaultPageDelay paces history calls for the Tier 3 rate limit
	DefaultPageDelay = 1200 * time.Millisecond
)

// SlackAPI defines the Slack API methods used by the client
//
//go:generate go tool mockgen -source=$GOFILE -destination=client_mocks.go -package=slack
type SlackAPI interface {
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
}

// FileRef describes a file written by CSVWriter
type FileRef struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
	Lines int    `json:"lines"` // CSV records, header included
}

type Client struct {
	api       SlackAPI
	logger    *zap.Logger
	pageSize  int
	pageDelay time.Duration
	sleep     func(ctx context.Context, d time.Duration) error
}

func NewClient(cfg config.Config, logger *zap.Logger) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("slack token is required")
	}

	opts := []slack.Option{}

	if cfg.Cookie != "" {
		logger.Info("Using cookie authentication for Slack client")
		httpClient := &http.Client{
			Transport: newCookieTransport(cfg.Cookie, logger),
		}
		opts = append(opts, slack.OptionHTTPClient(httpClient))
	}

	api := slack.New(cfg.Token, opts...)

	return newClientWithAPI(api, logger), nil
}

// newClientWithAPI creates a client with a given SlackAPI (for testing)
func newClientWithAPI(api SlackAPI, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		api:       api,
		logger:    logger,
		pageSize:  DefaultPageSize,
		pageDelay: DefaultPageDelay,
		sleep:     sleepContext,
	}
}

// sleepContext waits for d or until ctx is done, whichever comes first
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

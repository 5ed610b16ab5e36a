package slack

import (
	"context"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// MessageRecord is one row of the messages table
type MessageRecord struct {
	Timestamp string `csv:"timestamp"`
	Text      string `csv:"text"`
	User      string `csv:"user"`
}

// ReactionRecord is one row of the reactions table: a single user's use of
// a reaction on the message identified by Timestamp
type ReactionRecord struct {
	Timestamp string `csv:"timestamp"`
	Reaction  string `csv:"reaction"`
	ReactedBy string `csv:"reacted_by"`
}

// History is the result of a paginated history fetch. Records are in the
// order the API returned them.
type History struct {
	Messages  []MessageRecord
	Reactions []ReactionRecord
	Pages     int   // pages fetched successfully
	Requests  int   // history calls issued
	Err       error // reason the fetch stopped early, nil when complete
}

// Truncated reports whether the fetch stopped before the last page
func (h *History) Truncated() bool {
	return h.Err != nil
}

// addMessage appends the message and one reaction record per reacting user
func (h *History) addMessage(msg slack.Message) {
	h.Messages = append(h.Messages, MessageRecord{
		Timestamp: msg.Timestamp,
		Text:      msg.Text,
		User:      msg.User,
	})
	for _, r := range msg.Reactions {
		for _, userID := range r.Users {
			h.Reactions = append(h.Reactions, ReactionRecord{
				Timestamp: msg.Timestamp,
				Reaction:  r.Name,
				ReactedBy: userID,
			})
		}
	}
}

// FetchHistory pages through conversations.history for channelID within
// window. It never returns an error: a failed page ends the fetch, the
// failure is logged and kept in History.Err, and everything collected so
// far is returned. No request is retried.
func (c *Client) FetchHistory(ctx context.Context, channelID string, window TimeWindow) *History {
	h := &History{}

	if window.Empty() {
		c.logger.Warn("Empty time window, nothing to fetch",
			zap.Time("oldest", window.Oldest),
			zap.Time("latest", window.Latest))
		return h
	}

	cursor := ""
	for {
		select {
		case <-ctx.Done():
			h.Err = ctx.Err()
			return h
		default:
		}

		params := &slack.GetConversationHistoryParameters{
			ChannelID: channelID,
			Cursor:    cursor,
			Oldest:    window.oldestParam(),
			Latest:    window.latestParam(),
			Limit:     c.pageSize,
		}
		c.logger.Debug("Fetching history page",
			zap.String("channel_id", channelID),
			zap.String("oldest", params.Oldest),
			zap.String("latest", params.Latest),
			zap.Int("limit", params.Limit),
			zap.String("cursor", cursor),
			zap.Int("page", h.Pages+1))

		h.Requests++
		history, err := c.api.GetConversationHistoryContext(ctx, params)
		if err != nil {
			c.logger.Error("Failed to fetch history page, stopping export",
				append(errorFields(err),
					zap.String("channel_id", channelID),
					zap.Int("page", h.Pages+1))...)
			h.Err = WrapError(c.logger, "conversations.history", err)
			return h
		}

		for _, msg := range history.Messages {
			h.addMessage(msg)
		}
		h.Pages++

		cursor = history.ResponseMetaData.NextCursor
		if cursor == "" {
			c.logger.Info("History fetch complete",
				zap.String("channel_id", channelID),
				zap.Int("pages", h.Pages),
				zap.Int("messages", len(h.Messages)),
				zap.Int("reactions", len(h.Reactions)))
			return h
		}

		if err := c.sleep(ctx, c.pageDelay); err != nil {
			h.Err = err
			return h
		}
	}
}

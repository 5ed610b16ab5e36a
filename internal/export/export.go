package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mcconachie.co/slack-history-csv/internal/config"
	slackclient "go.mcconachie.co/slack-history-csv/internal/slack"
	"go.uber.org/zap"
)

// HistoryFetcher collects the history of a channel within a time window
//
//go:generate go tool mockgen -source=$GOFILE -destination=export_mocks.go -package=export
type HistoryFetcher interface {
	FetchHistory(ctx context.Context, channelID string, window slackclient.TimeWindow) *slackclient.History
}

// TableWriter serializes the two history tables
type TableWriter interface {
	WriteMessages(path string, records []slackclient.MessageRecord) (slackclient.FileRef, error)
	WriteReactions(path string, records []slackclient.ReactionRecord) (slackclient.FileRef, error)
}

// Result describes a finished export
type Result struct {
	Window    slackclient.TimeWindow
	History   *slackclient.History
	Messages  slackclient.FileRef
	Reactions slackclient.FileRef
}

// Truncated reports whether the written tables hold a partial history
func (r Result) Truncated() bool {
	return r.History != nil && r.History.Truncated()
}

// Exporter runs a single history export: window, fetch, write, report
type Exporter struct {
	fetcher HistoryFetcher
	writer  TableWriter
	logger  *zap.Logger
	out     io.Writer
	now     func() time.Time
}

func NewExporter(fetcher HistoryFetcher, writer TableWriter, logger *zap.Logger, out io.Writer) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		fetcher: fetcher,
		writer:  writer,
		logger:  logger,
		out:     out,
		now:     time.Now,
	}
}

// Run exports the configured channel. Fetch failures do not fail the run:
// whatever was collected is still written and the result is marked
// truncated. Only write failures are returned as errors.
func (e *Exporter) Run(ctx context.Context, cfg config.Config) (Result, error) {
	window := slackclient.NewTimeWindow(e.now(), cfg.YearsAgo)
	e.logger.Info("Exporting channel history",
		zap.String("channel_id", cfg.ChannelID),
		zap.Int("years_ago", cfg.YearsAgo),
		zap.Time("oldest", window.Oldest),
		zap.Time("latest", window.Latest))

	history := e.fetcher.FetchHistory(ctx, cfg.ChannelID, window)
	res := Result{Window: window, History: history}

	if history.Truncated() {
		e.logger.Warn("History export is incomplete, writing partial results",
			zap.Int("pages", history.Pages),
			zap.Int("messages", len(history.Messages)),
			zap.Error(history.Err))
	}

	var err error
	res.Messages, err = e.writer.WriteMessages(cfg.MessagesFile, history.Messages)
	if err != nil {
		return res, fmt.Errorf("failed to write messages to %s: %w", cfg.MessagesFile, err)
	}
	res.Reactions, err = e.writer.WriteReactions(cfg.ReactionsFile, history.Reactions)
	if err != nil {
		return res, fmt.Errorf("failed to write reactions to %s: %w", cfg.ReactionsFile, err)
	}

	fmt.Fprintf(e.out, "Messages saved to %s\n", res.Messages.Path)
	fmt.Fprintf(e.out, "Reactions saved to %s\n", res.Reactions.Path)

	e.logger.Info("Export finished",
		zap.Int("messages", len(history.Messages)),
		zap.Int("reactions", len(history.Reactions)),
		zap.Int64("messages_bytes", res.Messages.Bytes),
		zap.Int64("reactions_bytes", res.Reactions.Bytes),
		zap.Bool("truncated", res.Truncated()))

	return res, nil
}

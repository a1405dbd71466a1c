// Package usecase contains application-level services.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DefaultJokeAmount is how many jokes one fetch asks for.
const DefaultJokeAmount = 2

// JokeSource abstracts the remote joke service.
type JokeSource interface {
	Categories(ctx context.Context) ([]string, error)
	Jokes(ctx context.Context, category string, amount int) ([]string, error)
}

// JokeService coordinates category and joke fetches. Failures are logged
// and returned; callers decide whether to surface them.
type JokeService struct {
	Source  JokeSource
	Amount  int
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewJokeService constructs a JokeService.
func NewJokeService(source JokeSource, amount int, timeout time.Duration, logger *slog.Logger) JokeService {
	return JokeService{
		Source:  source,
		Amount:  amount,
		Timeout: timeout,
		Logger:  logger,
	}
}

// FetchCategories returns the category list from the source.
func (s JokeService) FetchCategories(ctx context.Context) (categories []string, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			categories, err = nil, fmt.Errorf("category fetch panicked: %v", r)
		}
		if err != nil {
			s.logger().Error("category fetch failed", "error", err, "duration", time.Since(start))
			return
		}
		s.logger().Debug("categories fetched", "count", len(categories), "duration", time.Since(start))
	}()

	if s.Source == nil {
		return nil, fmt.Errorf("joke source is not configured")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.Source.Categories(ctx)
}

// FetchJokes returns a batch of jokes for category.
func (s JokeService) FetchJokes(ctx context.Context, category string) (jokes []string, err error) {
	category = strings.TrimSpace(category)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			jokes, err = nil, fmt.Errorf("joke fetch panicked: %v", r)
		}
		if err != nil {
			s.logger().Error("joke fetch failed", "category", category, "error", err, "duration", time.Since(start))
			return
		}
		s.logger().Debug("jokes fetched", "category", category, "count", len(jokes), "duration", time.Since(start))
	}()

	if s.Source == nil {
		return nil, fmt.Errorf("joke source is not configured")
	}
	if category == "" {
		return nil, fmt.Errorf("category is empty")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	jokes, err = s.Source.Jokes(ctx, category, s.amount())
	if err != nil {
		return nil, fmt.Errorf("fetching jokes for %s: %w", category, err)
	}
	return jokes, nil
}

func (s JokeService) amount() int {
	if s.Amount > 0 {
		return s.Amount
	}
	return DefaultJokeAmount
}

func (s JokeService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.Timeout > 0 {
		return context.WithTimeout(ctx, s.Timeout)
	}
	return ctx, func() {}
}

func (s JokeService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

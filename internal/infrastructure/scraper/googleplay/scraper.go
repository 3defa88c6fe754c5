// Package googleplay fetches app reviews through the Play Store's internal
// batchexecute endpoint, paginating with continuation tokens the same way the
// store's own web UI does.
package googleplay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
	"github.com/abenezerm/fintech-review-analytics/internal/infrastructure/resilience"
	"github.com/abenezerm/fintech-review-analytics/internal/observability/metrics"
)

const (
	baseURL    = "https://play.google.com"
	batchPath  = "/_/PlayStoreUi/data/batchexecute"
	reviewsRPC = "UsvDTd"
	sortNewest = 2
)

type Scraper struct {
	client    *resty.Client
	limiter   *rate.Limiter
	exec      *resilience.Executor
	batchSize int
	log       *slog.Logger
	metrics   *metrics.Pipeline
}

func New(rps float64, batchSize int, exec *resilience.Executor, log *slog.Logger, m *metrics.Pipeline) *Scraper {
	if rps <= 0 {
		rps = 1
	}
	if batchSize <= 0 || batchSize > 199 {
		batchSize = 100
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	return &Scraper{
		client:    client,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		exec:      exec,
		batchSize: batchSize,
		log:       log,
		metrics:   m,
	}
}

// FetchReviews pages through the app's newest reviews until count is reached
// or the store stops returning a continuation token.
func (s *Scraper) FetchReviews(ctx context.Context, target domain.AppTarget, count int) ([]domain.RawReview, error) {
	if err := s.verifyListing(ctx, target.AppID); err != nil {
		return nil, fmt.Errorf("verify app listing %s: %w", target.AppID, err)
	}

	out := make([]domain.RawReview, 0, count)
	token := ""
	for len(out) < count {
		if err := s.limiter.Wait(ctx); err != nil {
			return out, err
		}

		batch, next, err := s.fetchBatch(ctx, target, token)
		if err != nil {
			return out, fmt.Errorf("fetch review batch for %s: %w", target.AppID, err)
		}
		out = append(out, batch...)
		if s.metrics != nil {
			s.metrics.ReviewsFetched(target.ShortName, len(batch))
		}

		if next == "" || len(batch) == 0 {
			break
		}
		token = next
	}

	if len(out) > count {
		out = out[:count]
	}
	s.log.Info("scraped app reviews", "app_id", target.AppID, "bank", target.BankName, "reviews", len(out))
	return out, nil
}

// verifyListing confirms the app page exists before paging reviews; a typo in
// the manifest should fail fast, not after dozens of empty batches.
func (s *Scraper) verifyListing(ctx context.Context, appID string) error {
	return s.exec.Execute(ctx, "googleplay.listing", func(ctx context.Context) error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetQueryParam("id", appID).
			Get("/store/apps/details")
		if err != nil {
			return resilience.Retryable(fmt.Errorf("%w: %w", domain.ErrTemporary, err))
		}
		if resp.StatusCode() == 404 {
			return fmt.Errorf("app %s not found", appID)
		}
		if resp.IsError() {
			return resilience.Retryable(fmt.Errorf("%w: listing status %d", domain.ErrTemporary, resp.StatusCode()))
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
		if err != nil {
			return fmt.Errorf("parse listing page: %w", err)
		}
		if title := doc.Find("title").First().Text(); title != "" {
			s.log.Debug("resolved app listing", "app_id", appID, "title", title)
		}
		return nil
	})
}

func (s *Scraper) fetchBatch(ctx context.Context, target domain.AppTarget, token string) ([]domain.RawReview, string, error) {
	payload := reviewsPayload(target.AppID, s.batchSize, token)

	var body string
	err := s.exec.Execute(ctx, "googleplay.reviews", func(ctx context.Context) error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8").
			SetQueryParam("rpcids", reviewsRPC).
			SetBody("f.req=" + url.QueryEscape(payload)).
			Post(batchPath)
		if err != nil {
			return resilience.Retryable(fmt.Errorf("%w: %w", domain.ErrTemporary, err))
		}
		if resp.IsError() {
			return resilience.Retryable(fmt.Errorf("%w: batchexecute status %d", domain.ErrTemporary, resp.StatusCode()))
		}
		body = resp.String()
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return parseBatchResponse(body, target)
}

func reviewsPayload(appID string, batchSize int, token string) string {
	tokenJSON := "null"
	if token != "" {
		escaped, _ := json.Marshal(token)
		tokenJSON = string(escaped)
	}
	inner := fmt.Sprintf(`[null,null,[2,%d,[%d,null,%s]],["%s",7]]`, sortNewest, batchSize, tokenJSON, appID)
	envelope := [][]any{{reviewsRPC, inner, nil, "generic"}}
	wrapped, _ := json.Marshal([]any{envelope})
	return string(wrapped)
}

// parseBatchResponse unwraps the anti-JSON prefix and the doubly-encoded
// payload the endpoint returns.
func parseBatchResponse(body string, target domain.AppTarget) ([]domain.RawReview, string, error) {
	idx := strings.Index(body, "\n")
	if idx >= 0 {
		body = body[idx+1:]
	}

	var envelope []any
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &envelope); err != nil {
		return nil, "", fmt.Errorf("decode batchexecute envelope: %w", err)
	}

	payload := nestedString(envelope, 0, 2)
	if payload == "" {
		return nil, "", nil
	}

	var data []any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, "", fmt.Errorf("decode reviews payload: %w", err)
	}

	rawList, _ := nested(data, 0).([]any)
	reviews := make([]domain.RawReview, 0, len(rawList))
	for _, item := range rawList {
		entry, ok := item.([]any)
		if !ok {
			continue
		}
		reviews = append(reviews, decodeReview(entry, target))
	}

	token, _ := nested(data, 1, 1).(string)
	return reviews, token, nil
}

func decodeReview(entry []any, target domain.AppTarget) domain.RawReview {
	raw := domain.RawReview{
		ID:     uuid.NewString(),
		Bank:   target.BankName,
		Source: "google_play",
	}
	if id, ok := nested(entry, 0).(string); ok && id != "" {
		raw.ID = id
	}
	if rating, ok := nested(entry, 2).(float64); ok {
		r := int(rating)
		raw.Rating = &r
	}
	if text, ok := nested(entry, 4).(string); ok {
		raw.Text = text
	}
	if seconds, ok := nested(entry, 5, 0).(float64); ok {
		raw.Date = unixDate(int64(seconds))
	}
	return raw
}

func nested(v any, path ...int) any {
	cur := v
	for _, i := range path {
		list, ok := cur.([]any)
		if !ok || i >= len(list) {
			return nil
		}
		cur = list[i]
	}
	return cur
}

func nestedString(v any, path ...int) string {
	s, _ := nested(v, path...).(string)
	return s
}

func unixDate(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format("2006-01-02")
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avc-dev/shortlink/internal/clock"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/shortcode"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LinkService creates and resolves short links.
type LinkService struct {
	repo      LinkRepository
	filter    ExistenceFilter
	generator CodeGenerator
	ids       IDGenerator
	publisher StatsPublisher
	clk       clock.Clock
	logger    *zap.Logger
}

// NewLinkService creates a LinkService.
func NewLinkService(
	repo LinkRepository,
	filter ExistenceFilter,
	generator CodeGenerator,
	ids IDGenerator,
	publisher StatsPublisher,
	logger *zap.Logger,
) *LinkService {
	return &LinkService{
		repo:      repo,
		filter:    filter,
		generator: generator,
		ids:       ids,
		publisher: publisher,
		clk:       clock.Real{},
		logger:    logger,
	}
}

// Create stores a new short link for req.OriginURL under req.Domain.
func (s *LinkService) Create(ctx context.Context, req model.CreateLinkRequest) (model.Link, error) {
	originURL, err := normalizeURL(req.OriginURL)
	if err != nil {
		return model.Link{}, err
	}

	domain := strings.TrimSpace(req.Domain)
	if domain == "" || strings.Contains(domain, "/") {
		return model.Link{}, ErrInvalidDomain
	}

	code, err := s.generator.Generate(ctx, originURL, domain)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to generate short code: %w", err)
	}

	link := model.Link{
		ID:           s.ids.NextID(),
		Domain:       domain,
		ShortURI:     code,
		FullShortURL: shortcode.FullShortURL(domain, code),
		OriginURL:    originURL,
		Gid:          req.Gid,
		Describe:     req.Describe,
	}

	if err := s.repo.InsertLink(ctx, link); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return model.Link{}, s.reconcile(ctx, link.FullShortURL, err)
		}
		return model.Link{}, fmt.Errorf("failed to create link: %w", err)
	}

	if err := s.filter.Add(ctx, link.FullShortURL); err != nil {
		// without the filter entry Resolve would reject the new link
		return model.Link{}, fmt.Errorf("failed to register link %s: %w", link.FullShortURL, err)
	}

	s.logger.Debug("short link created",
		zap.String("full_short_url", link.FullShortURL),
		zap.Int64("id", link.ID),
	)

	return link, nil
}

// reconcile decides what a unique violation on insert means. A row that
// really exists is a collision the filter missed; anything else is some
// other constraint and the insert error is returned as is.
func (s *LinkService) reconcile(ctx context.Context, fullShortURL string, insertErr error) error {
	_, err := s.repo.GetLinkByFullShortURL(ctx, fullShortURL)
	switch {
	case err == nil:
		s.logger.Warn("existence filter missed a stored link",
			zap.String("full_short_url", fullShortURL),
		)
		if addErr := s.filter.Add(ctx, fullShortURL); addErr != nil {
			s.logger.Warn("failed to add missed link to filter", zap.Error(addErr))
		}
		return fmt.Errorf("%s: %w", fullShortURL, ErrConflictDetected)
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("failed to create link: %w", insertErr)
	default:
		return fmt.Errorf("failed to verify duplicate link %s: %w", fullShortURL, errors.Join(insertErr, err))
	}
}

// Resolve returns the link stored under domain/code and emits a stats
// message for the visit. Keys the filter has never seen are rejected
// without a database lookup.
func (s *LinkService) Resolve(ctx context.Context, domain, code string, visit model.Visit) (model.Link, error) {
	fullShortURL := shortcode.FullShortURL(domain, code)

	present, err := s.filter.MightContain(ctx, fullShortURL)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to check link filter: %w", err)
	}
	if !present {
		return model.Link{}, fmt.Errorf("%s: %w", fullShortURL, ErrLinkNotFound)
	}

	link, err := s.repo.GetLinkByFullShortURL(ctx, fullShortURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Link{}, fmt.Errorf("%s: %w", fullShortURL, ErrLinkNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to load link: %w", err)
	}

	msg := model.StatsMessage{
		Keys:         uuid.NewString(),
		FullShortURL: fullShortURL,
		RemoteAddr:   visit.RemoteAddr,
		UserAgent:    visit.UserAgent,
		OccurredAt:   s.clk.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.logger.Warn("failed to publish stats message",
			zap.String("full_short_url", fullShortURL),
			zap.Error(err),
		)
	}

	return link, nil
}

// WarmUp adds every stored link to the filter and returns how many were added.
func (s *LinkService) WarmUp(ctx context.Context) (int, error) {
	count := 0
	err := s.repo.ForEachFullShortURL(ctx, func(fullShortURL string) error {
		if err := s.filter.Add(ctx, fullShortURL); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("failed to warm up link filter: %w", err)
	}
	return count, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidURL)
	}

	return raw, nil
}

// Package composer turns free-text input into schema-constrained requests
// for a generative language service and interprets the answers.
package composer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/discourse/pkg/formatting"
)

// Composer drafts proposals and polishes messages through a Generator.
type Composer struct {
	dial       Dialer
	credential CredentialSource
	logger     *slog.Logger
	timeout    time.Duration
}

// New creates a Composer. A zero timeout leaves the caller's context as
// the only deadline.
func New(dial Dialer, credential CredentialSource, logger *slog.Logger, timeout time.Duration) *Composer {
	return &Composer{
		dial:       dial,
		credential: credential,
		logger:     logger.With("system", "composer"),
		timeout:    timeout,
	}
}

// CredentialConfigured reports whether a credential is currently available.
func (c *Composer) CredentialConfigured() bool {
	return c.credential() != ""
}

// Classify buckets err against the current credential state.
func (c *Composer) Classify(err error) *Failure {
	return Classify(err, c.CredentialConfigured())
}

// Propose drafts a conversation for the described situation. Returns
// ErrEmptyInput without contacting the service when the situation is blank.
func (c *Composer) Propose(ctx context.Context, situation string) (ProposalResult, error) {
	situation = strings.TrimSpace(situation)
	if situation == "" {
		return ProposalResult{}, ErrEmptyInput
	}
	return execute[ProposalResult](ctx, c, ProposalRequest(situation))
}

// Polish rewrites a draft in the given style and recommends a verse.
// Returns ErrEmptyInput without contacting the service when the draft is blank.
func (c *Composer) Polish(ctx context.Context, draft string, style Style) (PolishResult, error) {
	if _, err := ParseStyle(string(style)); err != nil {
		return PolishResult{}, err
	}
	draft = strings.TrimSpace(draft)
	if draft == "" {
		return PolishResult{}, ErrEmptyInput
	}
	return execute[PolishResult](ctx, c, PolishRequest(draft, style))
}

func execute[T any](ctx context.Context, c *Composer, req Request) (T, error) {
	var zero T

	credential := c.credential()
	if credential == "" {
		return zero, ErrMissingCredential
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	logger := c.logger.With(
		"request_id", uuid.NewString(),
		"schema", req.Schema.Name,
	)

	gen, err := c.dial(ctx, credential)
	if err != nil {
		return zero, fmt.Errorf("dial generator: %w", err)
	}

	start := time.Now()
	logger.InfoContext(ctx, "generation started")

	text, err := gen.Generate(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "generation failed", "error", err, "duration", time.Since(start))
		return zero, fmt.Errorf("generate %s: %w", req.Schema.Name, err)
	}

	result, err := formatting.ParseFields[T](text, req.Schema.Required())
	if err != nil {
		logger.ErrorContext(ctx, "response rejected", "error", err)
		return zero, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	logger.InfoContext(ctx, "generation complete", "duration", time.Since(start))
	return result, nil
}

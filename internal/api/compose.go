package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/discourse/internal/composer"
	"github.com/JaimeStill/discourse/pkg/handlers"
	"github.com/JaimeStill/discourse/pkg/routes"
)

// ProposalRequest is the body of POST /proposal.
type ProposalRequest struct {
	Situation string `json:"situation"`
}

// PolishRequest is the body of POST /polish. An empty style means warm.
type PolishRequest struct {
	Draft string         `json:"draft"`
	Style composer.Style `json:"style"`
}

// ProposalResponse is a proposal with its clipboard summary.
type ProposalResponse struct {
	composer.ProposalResult
	Copy string `json:"copy"`
}

// FailureResponse reports a classified generation failure.
type FailureResponse struct {
	Category composer.Category `json:"category"`
	Message  string            `json:"message"`
	Detail   string            `json:"detail,omitempty"`
}

type composeHandler struct {
	composer     *composer.Composer
	logger       *slog.Logger
	maxInputSize int64
}

func newComposeHandler(
	comp *composer.Composer,
	logger *slog.Logger,
	maxInputSize int64,
) *composeHandler {
	return &composeHandler{
		composer:     comp,
		logger:       logger.With("handler", "compose"),
		maxInputSize: maxInputSize,
	}
}

func (h *composeHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/styles", Handler: h.styles, OpenAPI: docs.styles},
			{Method: "POST", Pattern: "/proposal", Handler: h.propose, OpenAPI: docs.proposal},
			{Method: "POST", Pattern: "/polish", Handler: h.polish, OpenAPI: docs.polish},
		},
	}
}

func (h *composeHandler) styles(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, composer.Styles())
}

func (h *composeHandler) propose(w http.ResponseWriter, r *http.Request) {
	var req ProposalRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.composer.Propose(r.Context(), req.Situation)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ProposalResponse{
		ProposalResult: result,
		Copy:           result.CopyText(),
	})
}

func (h *composeHandler) polish(w http.ResponseWriter, r *http.Request) {
	var req PolishRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Style == "" {
		req.Style = composer.StyleWarm
	}

	result, err := h.composer.Polish(r.Context(), req.Draft, req.Style)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *composeHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := handlers.DecodeJSON(w, r, h.maxInputSize, v)
	switch {
	case err == nil:
		return true
	case errors.Is(err, handlers.ErrBodyTooLarge):
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, err)
	default:
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
	}
	return false
}

func (h *composeHandler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, composer.ErrEmptyInput) || errors.Is(err, composer.ErrInvalidStyle) {
		handlers.RespondError(w, h.logger, composer.MapHTTPStatus(err), err)
		return
	}

	f := h.composer.Classify(err)
	status := composer.MapHTTPStatus(f)
	h.logger.Warn("generation failed", "category", f.Category, "status", status, "error", err)

	handlers.RespondJSON(w, status, FailureResponse{
		Category: f.Category,
		Message:  f.Message(),
		Detail:   f.Detail,
	})
}

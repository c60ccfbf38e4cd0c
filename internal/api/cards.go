package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/discourse/internal/cards"
	"github.com/JaimeStill/discourse/internal/catalog"
	"github.com/JaimeStill/discourse/pkg/handlers"
	"github.com/JaimeStill/discourse/pkg/pagination"
	"github.com/JaimeStill/discourse/pkg/routes"
)

var errInvalidIndex = errors.New("index must be a non-negative integer")

type cardsHandler struct {
	catalog    *catalog.Catalog
	formatter  *cards.Formatter
	logger     *slog.Logger
	pagination pagination.Config
}

func newCardsHandler(
	cat *catalog.Catalog,
	formatter *cards.Formatter,
	logger *slog.Logger,
	pageCfg pagination.Config,
) *cardsHandler {
	return &cardsHandler{
		catalog:    cat,
		formatter:  formatter,
		logger:     logger.With("handler", "cards"),
		pagination: pageCfg,
	}
}

func (h *cardsHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/modes", Handler: h.modes, OpenAPI: docs.modes},
			{Method: "GET", Pattern: "/items", Handler: h.search, OpenAPI: itemsDoc(h.pagination.MaxPageSize)},
		},
		Children: []routes.Group{
			{
				Prefix: "/topics",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.topics, OpenAPI: docs.topics},
					{Method: "GET", Pattern: "/{topic}", Handler: h.topic, OpenAPI: docs.topic},
					{Method: "GET", Pattern: "/{topic}/cards", Handler: h.list, OpenAPI: docs.cards},
					{Method: "GET", Pattern: "/{topic}/cards/{index}", Handler: h.find, OpenAPI: docs.card},
				},
			},
		},
	}
}

func (h *cardsHandler) modes(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, cards.Modes())
}

func (h *cardsHandler) topics(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.catalog.Topics())
}

func (h *cardsHandler) topic(w http.ResponseWriter, r *http.Request) {
	topic, err := h.catalog.Topic(r.PathValue("topic"))
	if err != nil {
		handlers.RespondError(w, h.logger, catalog.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, topic)
}

func (h *cardsHandler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := pagination.PageRequestFromQuery(q, h.pagination)

	matches, err := h.catalog.Search(req.Term(), q.Get("topic"))
	if err != nil {
		handlers.RespondError(w, h.logger, catalog.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pagination.Slice(matches, req))
}

func (h *cardsHandler) list(w http.ResponseWriter, r *http.Request) {
	mode, err := cards.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		handlers.RespondError(w, h.logger, cards.MapHTTPStatus(err), err)
		return
	}

	result, err := h.formatter.FormatTopic(mode, h.catalog, r.PathValue("topic"))
	if err != nil {
		handlers.RespondError(w, h.logger, mapCardStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *cardsHandler) find(w http.ResponseWriter, r *http.Request) {
	mode, err := cards.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		handlers.RespondError(w, h.logger, cards.MapHTTPStatus(err), err)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidIndex)
		return
	}

	card, err := h.formatter.FormatItem(mode, h.catalog, r.PathValue("topic"), index)
	if err != nil {
		handlers.RespondError(w, h.logger, mapCardStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, card)
}

func mapCardStatus(err error) int {
	if status := catalog.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return cards.MapHTTPStatus(err)
}

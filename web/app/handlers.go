package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/discourse/internal/cards"
	"github.com/JaimeStill/discourse/internal/catalog"
	"github.com/JaimeStill/discourse/internal/composer"
	"github.com/JaimeStill/discourse/internal/infrastructure"
	"github.com/JaimeStill/discourse/internal/sessions"
	"github.com/JaimeStill/discourse/pkg/formatting"
	"github.com/JaimeStill/discourse/pkg/web"
)

type handler struct {
	ts        *web.TemplateSet
	catalog   *catalog.Catalog
	formatter *cards.Formatter
	composer  *composer.Composer
	sessions  *sessions.Store
	logger    *slog.Logger
	maxInput  int64
}

func newHandler(ts *web.TemplateSet, infra *infrastructure.Infrastructure, maxInput int64) *handler {
	return &handler{
		ts:        ts,
		catalog:   infra.Catalog,
		formatter: infra.Formatter,
		composer:  infra.Composer,
		sessions:  infra.Sessions,
		logger:    infra.Logger.With("module", "app"),
		maxInput:  maxInput,
	}
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resolve(w, r)
	q := r.URL.Query()

	mode, err := cards.ParseMode(q.Get("mode"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "지원하지 않는 봉사 방법입니다.")
		return
	}

	topic := q.Get("topic")
	if topic == "" {
		topic = h.catalog.Default()
	}

	list, err := h.formatter.FormatTopic(mode, h.catalog, topic)
	if err != nil {
		if errors.Is(err, catalog.ErrTopicNotFound) {
			h.renderError(w, http.StatusNotFound, "주제를 찾을 수 없습니다.")
			return
		}
		h.logger.Error("format topic failed", "topic", topic, "error", err)
		h.renderError(w, http.StatusInternalServerError, "카드를 표시할 수 없습니다.")
		return
	}

	data := page{
		basePath: h.ts.BasePath(),
		Tab:      parseTab(q.Get("tab")),
		Mode:     mode,
		Modes:    cards.Modes(),
		Topic:    topic,
		Topics:   h.catalog.Topics(),
		Cards:    list,
		Styles:   composer.Styles(),
		Style:    sess.Style(),
		Proposal: sess.Proposal.Snapshot(),
		Polish:   sess.Polish.Snapshot(),
	}

	err = h.ts.Render(w, layout, indexView.Template, web.ViewData{
		Title:    indexView.Title,
		Bundle:   indexView.Bundle,
		BasePath: h.ts.BasePath(),
		Data:     data,
	})
	if err != nil {
		h.logger.Error("render index failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *handler) propose(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resolve(w, r)
	if !h.parseForm(w, r) {
		return
	}

	state := sess.Proposal.Submit(
		context.WithoutCancel(r.Context()),
		r.PostFormValue("situation"),
		h.composer.Propose,
		h.composer.Classify,
	)
	h.logger.Info("proposal settled", "status", state.Status())

	h.redirect(w, r, tabProposal)
}

func (h *handler) polish(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resolve(w, r)
	if !h.parseForm(w, r) {
		return
	}

	style := composer.StyleWarm
	if s := r.PostFormValue("style"); s != "" {
		parsed, err := composer.ParseStyle(s)
		if err != nil {
			h.renderError(w, http.StatusBadRequest, "지원하지 않는 말투입니다.")
			return
		}
		style = parsed
	}

	draft := r.PostFormValue("draft")
	if strings.TrimSpace(draft) != "" {
		sess.SetStyle(style)
	}

	run := func(ctx context.Context, draft string) (composer.PolishResult, error) {
		return h.composer.Polish(ctx, draft, style)
	}

	state := sess.Polish.Submit(
		context.WithoutCancel(r.Context()),
		draft,
		run,
		h.composer.Classify,
	)
	h.logger.Info("polish settled", "style", style, "status", state.Status())

	h.redirect(w, r, tabPolish)
}

func (h *handler) resetProposal(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resolve(w, r)
	if !h.parseForm(w, r) {
		return
	}
	sess.Proposal.Reset()
	h.redirect(w, r, tabProposal)
}

func (h *handler) resetPolish(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resolve(w, r)
	if !h.parseForm(w, r) {
		return
	}
	sess.Polish.Reset()
	sess.SetStyle(composer.StyleWarm)
	h.redirect(w, r, tabPolish)
}

func (h *handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxInput)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.renderError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("입력 내용이 너무 깁니다. (최대 %s)", formatting.FormatBytes(tooLarge.Limit, 0)))
			return false
		}
		h.renderError(w, http.StatusBadRequest, "요청을 처리할 수 없습니다.")
		return false
	}
	return true
}

func (h *handler) redirect(w http.ResponseWriter, r *http.Request, tab string) {
	target := pageURL(h.ts.BasePath(), tab, r.PostFormValue("mode"), r.PostFormValue("topic"))
	http.Redirect(w, r, target+"#assistant", http.StatusSeeOther)
}

func (h *handler) renderError(w http.ResponseWriter, status int, message string) {
	err := h.ts.RenderStatus(w, status, layout, errorView.Template, web.ViewData{
		Title:    http.StatusText(status),
		Bundle:   errorView.Bundle,
		BasePath: h.ts.BasePath(),
		Data:     message,
	})
	if err != nil {
		h.logger.Error("render error page failed", "error", err)
		http.Error(w, message, status)
	}
}

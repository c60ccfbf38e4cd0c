package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/JaimeStill/discourse/internal/cards"
	"github.com/JaimeStill/discourse/internal/catalog"
	"github.com/JaimeStill/discourse/internal/cli"
	"github.com/JaimeStill/discourse/internal/composer"
)

const proposalJSON = `{"opening":"안녕하세요","script":"대화 예시","verse":"시편 34:18","verseText":"여호와는 가까이 계시고","truth":"하느님은 위로하십니다","followUp":"다음에 또 이야기해요"}`

const polishJSON = `{"text":"다듬은 글","verseRef":"잠언 17:17","verseText":"참 벗은 언제나 사랑하며"}`

type fakeGenerator struct {
	text string
	err  error
	last composer.Request
}

func (g *fakeGenerator) Generate(_ context.Context, req composer.Request) (string, error) {
	g.last = req
	return g.text, g.err
}

type harness struct {
	app       *cli.App
	gen       *fakeGenerator
	clipboard []string
}

func newHarness(t *testing.T, gen *fakeGenerator, credential string) *harness {
	t.Helper()

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}

	h := &harness{gen: gen}
	dial := func(context.Context, string) (composer.Generator, error) { return gen, nil }
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h.app = &cli.App{
		Catalog:   cat,
		Formatter: cards.New(),
		Composer:  composer.New(dial, func() string { return credential }, logger, 0),
		Clipboard: func(s string) error {
			h.clipboard = append(h.clipboard, s)
			return nil
		},
		Version: "test",
	}
	return h
}

func (h *harness) run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd(h.app)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestTopics(t *testing.T) {
	h := newHarness(t, &fakeGenerator{}, "key")

	out, _, err := h.run("topics")
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	for _, name := range h.app.Catalog.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("output missing topic %s", name)
		}
	}
}

func TestModesAndStyles(t *testing.T) {
	h := newHarness(t, &fakeGenerator{}, "key")

	out, _, err := h.run("modes")
	if err != nil {
		t.Fatalf("modes: %v", err)
	}
	if strings.Count(out, "\n") != 4 || !strings.Contains(out, "letter") {
		t.Errorf("modes output: %q", out)
	}

	out, _, err = h.run("styles")
	if err != nil {
		t.Fatalf("styles: %v", err)
	}
	if strings.Count(out, "\n") != 5 || !strings.Contains(out, "natural") {
		t.Errorf("styles output: %q", out)
	}
}

func TestCard(t *testing.T) {
	h := newHarness(t, &fakeGenerator{}, "key")
	items, err := h.app.Catalog.Items("희망")
	if err != nil {
		t.Fatalf("Items: %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{"all cards", []string{"card", "희망"}, "#" + strconv.Itoa(len(items)), nil},
		{"one card", []string{"card", "희망", "1", "--mode", "text"}, "#1", nil},
		{"bad index", []string{"card", "희망", "0"}, "", cli.ErrInvalidIndex},
		{"not a number", []string{"card", "희망", "one"}, "", cli.ErrInvalidIndex},
		{"out of range", []string{"card", "희망", "999"}, "", catalog.ErrItemNotFound},
		{"unknown topic", []string{"card", "없음"}, "", catalog.ErrTopicNotFound},
		{"bad mode", []string{"card", "희망", "--mode", "fax"}, "", cards.ErrInvalidMode},
		{"copy without index", []string{"card", "희망", "--copy"}, "", cli.ErrCopyNeedsIndex},
		{"conversation refuses copy", []string{"card", "희망", "1", "--copy"}, "", cli.ErrNotCopyable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := h.run(tt.args...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error: got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q: %s", tt.want, out)
			}
		})
	}

	if len(h.clipboard) != 0 {
		t.Errorf("clipboard written on refused copy: %v", h.clipboard)
	}
}

func TestCardCopy(t *testing.T) {
	h := newHarness(t, &fakeGenerator{}, "key")

	out, _, err := h.run("card", "가족", "2", "-m", "letter", "--copy")
	if err != nil {
		t.Fatalf("card --copy: %v", err)
	}

	want, err := h.app.Formatter.FormatItem(cards.ModeLetter, h.app.Catalog, "가족", 1)
	if err != nil {
		t.Fatalf("FormatItem: %v", err)
	}
	if len(h.clipboard) != 1 || h.clipboard[0] != want.Copy {
		t.Errorf("clipboard: got %v", h.clipboard)
	}
	if !strings.Contains(out, "복사되었습니다!") {
		t.Errorf("confirmation missing: %s", out)
	}
}

func TestPropose(t *testing.T) {
	gen := &fakeGenerator{text: proposalJSON}
	h := newHarness(t, gen, "key")

	out, _, err := h.run("propose", "이웃이", "외로워함", "--copy")
	if err != nil {
		t.Fatalf("propose: %v", err)
	}

	if !strings.Contains(gen.last.Prompt, `"이웃이 외로워함"`) {
		t.Errorf("prompt: got %q", gen.last.Prompt)
	}
	for _, want := range []string{"안녕하세요", "시편 34:18", "하느님은 위로하십니다", "q=%EC%8B%9C%ED%8E%B8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if len(h.clipboard) != 1 || !strings.HasPrefix(h.clipboard[0], "[인사] 안녕하세요") {
		t.Errorf("clipboard: got %v", h.clipboard)
	}
}

func TestProposeFailures(t *testing.T) {
	tests := []struct {
		name       string
		gen        *fakeGenerator
		credential string
		args       []string
		want       composer.Category
	}{
		{"usage", &fakeGenerator{err: errors.New("Error 429: quota exceeded")}, "key", []string{"propose", "상황"}, composer.UsageExceeded},
		{"missing key", &fakeGenerator{text: proposalJSON}, "", []string{"propose", "상황"}, composer.MissingCredential},
		{"polish invalid key", &fakeGenerator{err: errors.New("API key not valid")}, "key", []string{"polish", "초안"}, composer.InvalidCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.gen, tt.credential)

			_, stderr, err := h.run(tt.args...)
			var f *composer.Failure
			if !errors.As(err, &f) || f.Category != tt.want {
				t.Fatalf("error: got %v, want category %s", err, tt.want)
			}
			if !strings.Contains(stderr, f.Message()) {
				t.Errorf("stderr missing message: %q", stderr)
			}
		})
	}
}

func TestProposeBlank(t *testing.T) {
	h := newHarness(t, &fakeGenerator{text: proposalJSON}, "key")

	if _, _, err := h.run("propose", "   "); !errors.Is(err, composer.ErrEmptyInput) {
		t.Errorf("error: got %v, want ErrEmptyInput", err)
	}
}

func TestPolish(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		style   composer.Style
		wantErr error
	}{
		{"default style", []string{"polish", "안녕하세요"}, composer.StyleWarm, nil},
		{"short style", []string{"polish", "안녕하세요", "--style", "short"}, composer.StyleShort, nil},
		{"unknown style", []string{"polish", "안녕하세요", "-s", "loud"}, "", composer.ErrInvalidStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: polishJSON}
			h := newHarness(t, gen, "key")

			out, _, err := h.run(tt.args...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error: got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("polish: %v", err)
			}
			if !strings.Contains(gen.last.Prompt, tt.style.Instruction()) {
				t.Errorf("prompt missing style instruction: %q", gen.last.Prompt)
			}
			if !strings.Contains(out, "다듬은 글") || !strings.Contains(out, "잠언 17:17") {
				t.Errorf("output: %s", out)
			}
		})
	}
}

package api

import (
	"net/http"

	"github.com/JaimeStill/discourse/internal/cards"
	"github.com/JaimeStill/discourse/internal/composer"
	"github.com/JaimeStill/discourse/pkg/openapi"
	"github.com/JaimeStill/discourse/pkg/routes"
)

var docs = struct {
	modes, topics, topic, cards, card *openapi.Operation
	styles, proposal, polish          *openapi.Operation
}{
	modes: &openapi.Operation{
		Summary:   "List card modes",
		Tags:      []string{"Cards"},
		Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Card modes", "ModeList")},
	},
	topics: &openapi.Operation{
		Summary:   "List topics",
		Tags:      []string{"Catalog"},
		Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Topic summaries", "TopicList")},
	},
	topic: &openapi.Operation{
		Summary:    "Get a topic with its items",
		Tags:       []string{"Catalog"},
		Parameters: []*openapi.Parameter{topicParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Topic", "Topic"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	cards: &openapi.Operation{
		Summary:    "Render every item of a topic as cards",
		Tags:       []string{"Cards"},
		Parameters: []*openapi.Parameter{topicParam, modeParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Cards", "CardList"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	card: &openapi.Operation{
		Summary: "Render one item as a card",
		Tags:    []string{"Cards"},
		Parameters: []*openapi.Parameter{
			topicParam,
			openapi.PathParam("index", "integer", "Zero-based item position"),
			modeParam,
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Card", "Card"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	styles: &openapi.Operation{
		Summary:   "List polishing styles",
		Tags:      []string{"Compose"},
		Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Styles", "StyleList")},
	},
	proposal: &openapi.Operation{
		Summary:     "Propose a conversation for a situation",
		Tags:        []string{"Compose"},
		RequestBody: openapi.RequestBodyJSON("ProposalRequest", true),
		Responses:   composeResponses("Proposal", "ProposalResponse"),
	},
	polish: &openapi.Operation{
		Summary:     "Polish a draft message",
		Tags:        []string{"Compose"},
		RequestBody: openapi.RequestBodyJSON("PolishRequest", true),
		Responses:   composeResponses("Polished message", "PolishResult"),
	},
}

var (
	topicParam = openapi.PathParam("topic", "string", "Topic name")
	modeParam  = &openapi.Parameter{
		Name:        "mode",
		In:          "query",
		Description: "Card mode",
		Schema: &openapi.Schema{
			Type:    "string",
			Default: string(cards.ModeConversation),
			Enum:    modeEnum(),
		},
	}
)

func itemsDoc(maxPageSize int) *openapi.Operation {
	return &openapi.Operation{
		Summary:     "Search catalog items",
		Description: "Case-insensitive substring search across every item field, optionally restricted to one topic.",
		Tags:        []string{"Catalog"},
		Parameters: append(openapi.PageParams(maxPageSize),
			openapi.QueryParam("topic", "string", "Restrict results to this topic", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of matching items", "MatchPage"),
			404: openapi.ResponseRef("NotFound"),
		},
	}
}

func modeEnum() []any {
	var out []any
	for _, m := range cards.Modes() {
		out = append(out, m.Mode)
	}
	return out
}

func styleEnum() []any {
	var out []any
	for _, s := range composer.Styles() {
		out = append(out, s.Style)
	}
	return out
}

func composeResponses(description, schema string) map[int]*openapi.Response {
	return map[int]*openapi.Response{
		200: openapi.ResponseJSON(description, schema),
		400: openapi.ResponseRef("BadRequest"),
		413: openapi.ResponseRef("PayloadTooLarge"),
		429: openapi.ResponseJSON("Usage limit reached", "Failure"),
		502: openapi.ResponseJSON("Generation failed", "Failure"),
		503: openapi.ResponseJSON("No credential configured", "Failure"),
	}
}

func schemas() map[string]*openapi.Schema {
	str := func(desc string) *openapi.Schema { return &openapi.Schema{Type: "string", Description: desc} }
	object := func(required []string, props map[string]*openapi.Schema) *openapi.Schema {
		return &openapi.Schema{Type: "object", Required: required, Properties: props}
	}
	list := func(name string) *openapi.Schema {
		return &openapi.Schema{Type: "array", Items: openapi.SchemaRef(name)}
	}

	item := object(nil, map[string]*openapi.Schema{
		"question": str("Opening question; **text** marks emphasis"),
		"verse":    str("Scripture reference"),
		"truth":    str("Bible truth"),
		"revisit":  str("Follow-up question"),
		"title":    str("Suggested publication"),
		"closing":  str("Closing line"),
	})

	return map[string]*openapi.Schema{
		"Item": item,
		"Topic": object([]string{"name", "items"}, map[string]*openapi.Schema{
			"name":  str("Topic name"),
			"icon":  str("Display icon"),
			"items": list("Item"),
		}),
		"TopicList": list("TopicSummary"),
		"TopicSummary": object(nil, map[string]*openapi.Schema{
			"name":  str("Topic name"),
			"icon":  str("Display icon"),
			"count": {Type: "integer", Description: "Number of items"},
		}),
		"Match": object(nil, map[string]*openapi.Schema{
			"topic": str("Topic name"),
			"index": {Type: "integer", Description: "Zero-based item position"},
			"item":  openapi.SchemaRef("Item"),
		}),
		"MatchPage": object(nil, map[string]*openapi.Schema{
			"data":        list("Match"),
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
		}),
		"Card":      {Type: "object", Description: "An item rendered for one card mode"},
		"CardList":  list("Card"),
		"ModeList":  {Type: "array", Items: &openapi.Schema{Type: "object"}},
		"StyleList": {Type: "array", Items: &openapi.Schema{Type: "object"}},
		"ProposalRequest": object([]string{"situation"}, map[string]*openapi.Schema{
			"situation": {Type: "string", Description: "Free-text description of the situation", MinLength: openapi.Int(1)},
		}),
		"PolishRequest": object([]string{"draft"}, map[string]*openapi.Schema{
			"draft": {Type: "string", Description: "Message to polish", MinLength: openapi.Int(1)},
			"style": {Type: "string", Default: string(composer.StyleWarm), Enum: styleEnum()},
		}),
		"ProposalResponse": object(nil, map[string]*openapi.Schema{
			"opening":   str("Greeting"),
			"script":    str("Conversation script"),
			"verse":     str("Scripture reference"),
			"verseText": str("Verse text"),
			"truth":     str("Bible truth"),
			"followUp":  str("Follow-up prompt"),
			"copy":      str("Labeled summary for the clipboard"),
		}),
		"PolishResult": object(nil, map[string]*openapi.Schema{
			"text":      str("Polished message"),
			"verseRef":  str("Scripture reference"),
			"verseText": str("Verse text"),
		}),
		"Failure": object([]string{"category", "message"}, map[string]*openapi.Schema{
			"category": {Type: "string", Enum: []any{
				composer.MissingCredential,
				composer.UsageExceeded,
				composer.InvalidCredential,
				composer.GenericFailure,
			}},
			"message": str("User-facing explanation"),
			"detail":  str("Underlying error"),
		}),
	}
}

// newSpecHandler builds the API description from the documented routes and
// returns a handler serving it.
func newSpecHandler(runtime *Runtime, groups ...routes.Group) (http.HandlerFunc, error) {
	spec := openapi.FromConfig(&runtime.OpenAPI, runtime.Version, runtime.BasePath)
	spec.Components.AddSchemas(schemas())

	routes.Describe(spec, "", groups...)

	return spec.Handler()
}

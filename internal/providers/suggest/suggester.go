package suggest

import (
	"context"
	"fmt"
	"strings"
)

const (
	openAIProviderName = "openai"
	staticProviderName = "static"
)

// Kind selects which field the suggestion is written for.
type Kind string

const (
	KindTenderDescription Kind = "tender_description"
	KindQuoteMessage      Kind = "quote_message"
	KindProfileBio        Kind = "profile_bio"
)

type Request struct {
	Kind   Kind
	Trade  string
	Suburb string
	Input  string
}

type Response struct {
	Text     string
	Provider string
	Metadata map[string]string
}

// Suggester produces short marketplace copy for a user draft.
type Suggester interface {
	Suggest(ctx context.Context, req Request) (*Response, error)
}

// StaticSuggester is the offline fallback. It rewrites the draft with
// light templating so the endpoint keeps working without an API key.
type StaticSuggester struct{}

func NewStaticSuggester() *StaticSuggester {
	return &StaticSuggester{}
}

func (s *StaticSuggester) Suggest(_ context.Context, req Request) (*Response, error) {
	trade := strings.TrimSpace(req.Trade)
	if trade == "" {
		trade = "trades"
	}
	input := strings.TrimSpace(req.Input)
	var text string
	switch req.Kind {
	case KindQuoteMessage:
		text = fmt.Sprintf("Hi, I'm a local %s professional and I'd be glad to help with this job.", trade)
		if input != "" {
			text += " " + input
		}
	case KindProfileBio:
		text = fmt.Sprintf("Experienced %s professional", trade)
		if suburb := strings.TrimSpace(req.Suburb); suburb != "" {
			text += " servicing " + suburb + " and surrounds"
		}
		text += "."
		if input != "" {
			text += " " + input
		}
	default:
		if input == "" {
			text = fmt.Sprintf("Looking for a reliable %s professional for a job", trade)
			if suburb := strings.TrimSpace(req.Suburb); suburb != "" {
				text += " in " + suburb
			}
			text += "."
		} else {
			text = input
		}
	}
	return &Response{Text: text, Provider: staticProviderName}, nil
}

var _ Suggester = (*StaticSuggester)(nil)

func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type OpenAIOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Fallback   Suggester
	OnFallback func(reason string, err error)
}

// OpenAISuggester calls an OpenAI-compatible chat completions endpoint.
// Any failure degrades to the fallback suggester instead of erroring.
type OpenAISuggester struct {
	apiKey     string
	model      string
	baseURL    string
	client     *http.Client
	fallback   Suggester
	onFallback func(reason string, err error)
}

const openAIDefaultTimeout = 15 * time.Second

const defaultOpenAIModel = "gpt-4o-mini"

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenAISuggester(opts OpenAIOptions) (*OpenAISuggester, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultOpenAIModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: openAIDefaultTimeout}
	}
	return &OpenAISuggester{
		apiKey:     strings.TrimSpace(opts.APIKey),
		model:      model,
		baseURL:    baseURL,
		client:     client,
		fallback:   opts.Fallback,
		onFallback: opts.OnFallback,
	}, nil
}

func (o *OpenAISuggester) Suggest(ctx context.Context, req Request) (*Response, error) {
	payload := openAIChatRequest{
		Model:       o.model,
		Temperature: 0.6,
		MaxTokens:   300,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt(req.Kind)},
			{Role: "user", Content: userPrompt(req)},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return o.useFallback(ctx, req, "encode_request", err)
	}
	endpoint := fmt.Sprintf("%s/chat/completions", o.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return o.useFallback(ctx, req, "build_request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	resp, err := o.client.Do(httpReq)
	if err != nil {
		return o.useFallback(ctx, req, "http_request", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return o.useFallback(ctx, req, fmt.Sprintf("http_%d", resp.StatusCode), fmt.Errorf("openai status %d", resp.StatusCode))
	}
	var out openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return o.useFallback(ctx, req, "decode_response", err)
	}
	if len(out.Choices) == 0 {
		return o.useFallback(ctx, req, "empty_choices", errors.New("no choices"))
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return o.useFallback(ctx, req, "empty_response", errors.New("empty response"))
	}
	return &Response{Text: text, Provider: openAIProviderName}, nil
}

func (o *OpenAISuggester) useFallback(ctx context.Context, req Request, reason string, fallbackErr error) (*Response, error) {
	if o.onFallback != nil {
		o.onFallback(reason, fallbackErr)
	}
	fallback := o.fallback
	if fallback == nil {
		fallback = NewStaticSuggester()
	}
	res, err := fallback.Suggest(ctx, req)
	if res != nil {
		if res.Provider == "" {
			res.Provider = staticProviderName
		}
		if res.Metadata == nil {
			res.Metadata = map[string]string{}
		}
		if reason != "" {
			res.Metadata["fallback_reason"] = reason
		}
	}
	return res, err
}

var _ Suggester = (*OpenAISuggester)(nil)

func systemPrompt(kind Kind) string {
	switch kind {
	case KindQuoteMessage:
		return "You write short, friendly quote messages for tradespeople replying to job posts. Respond with the message text only."
	case KindProfileBio:
		return "You write concise professional bios for tradespeople on a marketplace. Respond with the bio text only."
	default:
		return "You write clear job descriptions for homeowners posting trade jobs. Respond with the description text only."
	}
}

func userPrompt(req Request) string {
	var b strings.Builder
	if trade := strings.TrimSpace(req.Trade); trade != "" {
		fmt.Fprintf(&b, "Trade: %s\n", trade)
	}
	if suburb := strings.TrimSpace(req.Suburb); suburb != "" {
		fmt.Fprintf(&b, "Location: %s\n", suburb)
	}
	fmt.Fprintf(&b, "Draft: %s\n", coalesce(req.Input, "(none)"))
	b.WriteString("Improve the draft. Keep it under 120 words.")
	return b.String()
}

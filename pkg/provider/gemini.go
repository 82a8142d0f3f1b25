package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/chatrelay/relay/pkg/env/model"
)

type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type Gemini struct {
	ModelEnv *model.Env

	client    *genai.Client
	generator generator
	options   []option.ClientOption
}

var _ Provider = (*Gemini)(nil)

type Option func(*Gemini)

func WithClientOptions(options ...option.ClientOption) Option {
	return func(g *Gemini) {
		g.options = append(g.options, options...)
	}
}

func NewGemini(ctx context.Context, m *model.Env, options ...Option) (*Gemini, error) {
	g := &Gemini{ModelEnv: m}

	for _, o := range options {
		o(g)
	}

	opts := append([]option.ClientOption{option.WithAPIKey(m.APIKey)}, g.options...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Gemini client: %w", err)
	}
	g.client = client
	g.generator = client.GenerativeModel(m.Name)

	return g, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutFor(g.ModelEnv))
	defer cancel()

	resp, err := g.generator.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &Error{Model: g.ModelEnv.Name, Err: err}
	}

	text, err := responseText(resp)
	if err != nil {
		return "", &Error{Model: g.ModelEnv.Name, Err: err}
	}

	return text, nil
}

func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", ErrEmptyResponse
	}

	var (
		b     strings.Builder
		found bool
	)
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
			found = true
		}
	}
	if !found {
		return "", ErrEmptyResponse
	}

	return b.String(), nil
}

func timeoutFor(m *model.Env) time.Duration {
	if m == nil || m.Timeout <= 0 {
		return model.DefaultTimeout
	}
	return m.Timeout
}

package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"flowquest/internal/reward"
	"flowquest/internal/task"
)

// Gemini asks the Gemini API for structured answers, constrained by
// response schemas so the model replies in a machine-readable shape.
type Gemini struct {
	client *genai.Client
	model  string
}

type GeminiOption func(*genai.ClientConfig)

// WithBaseURL overrides the API endpoint, for tests.
func WithBaseURL(u string) GeminiOption {
	return func(cc *genai.ClientConfig) { cc.HTTPOptions.BaseURL = u }
}

func WithHTTPClient(hc *http.Client) GeminiOption {
	return func(cc *genai.ClientConfig) { cc.HTTPClient = hc }
}

func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration, opts ...GeminiOption) (*Gemini, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(cc)
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// taskParsingSchema constrains the structured output for task parsing.
var taskParsingSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":            {Type: genai.TypeString},
		"description":      {Type: genai.TypeString},
		"priority":         {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High", "Urgent"}},
		"energyLevel":      {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High"}},
		"estimatedMinutes": {Type: genai.TypeInteger},
		"suggestedTags":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"title", "priority", "estimatedMinutes", "energyLevel"},
}

var breakdownSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

type parsedTask struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Priority         string   `json:"priority"`
	EnergyLevel      string   `json:"energyLevel"`
	EstimatedMinutes int      `json:"estimatedMinutes"`
	SuggestedTags    []string `json:"suggestedTags"`
}

func (g *Gemini) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return text, nil
}

func (g *Gemini) ParseTask(ctx context.Context, freeText string) (task.Draft, error) {
	prompt := fmt.Sprintf("Analyze this task request and extract structured data: %q. "+
		"Infer priority and energy level based on the context. "+
		"If a time is mentioned, assume it's for today or tomorrow as appropriate, "+
		"but return the duration in minutes.", freeText)

	text, err := g.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   taskParsingSchema,
		SystemInstruction: genai.NewContentFromText(
			"You are a productivity expert helping a user organize their life.", genai.RoleUser),
	})
	if err != nil {
		return task.Draft{}, err
	}

	var p parsedTask
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return task.Draft{}, fmt.Errorf("decode parsed task: %w", err)
	}

	return Normalize(task.Draft{
		Title:           p.Title,
		Description:     p.Description,
		Priority:        task.ParsePriority(p.Priority),
		EnergyLevel:     task.ParseEnergy(p.EnergyLevel),
		DurationMinutes: p.EstimatedMinutes,
		Tags:            p.SuggestedTags,
	}, freeText), nil
}

func (g *Gemini) BreakdownTask(ctx context.Context, title string) ([]string, error) {
	prompt := fmt.Sprintf("Break down the task %q into 3-5 actionable subtasks. "+
		"Return only the subtask titles as a JSON array of strings.", title)

	text, err := g.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   breakdownSchema,
	})
	if err != nil {
		return nil, err
	}

	var titles []string
	if err := json.Unmarshal([]byte(text), &titles); err != nil {
		return nil, fmt.Errorf("decode breakdown: %w", err)
	}
	return limitBreakdown(titles), nil
}

func (g *Gemini) DailyMotivation(ctx context.Context, stats reward.Stats) (string, error) {
	prompt := fmt.Sprintf("Generate a short, punchy motivational quote for a user with "+
		"level %d and %d day streak. Keep it under 20 words.", stats.Level, stats.Streak)

	return g.generate(ctx, prompt, nil)
}

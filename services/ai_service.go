package services

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"github.com/tnso721607-maker/tenderquote3/models"
)

const defaultModel = "gemini-2.0-flash"

//go:embed prompts/extract_rates.md
var extractRatesPrompt string

//go:embed prompts/extract_tender.md
var extractTenderPrompt string

//go:embed prompts/best_match.md
var bestMatchPrompt string

// contentGenerator is the slice of the model client the extraction prompts
// need. Tests substitute a stub.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// geminiGenerator wraps the GenAI client for plain prompt-in, text-out calls.
type geminiGenerator struct {
	client    *genai.Client
	modelName string
}

func newGeminiGenerator(ctx context.Context, apiKey, model string) (*geminiGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating genai client: %v", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &geminiGenerator{client: client, modelName: model}, nil
}

// GenerateContent sends the prompt and returns the concatenated textual parts
// of the first response.
func (g *geminiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("error generating content: %v", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("model returned empty response")
	}

	return output, nil
}

// AIService is the boundary to the external extraction and matching model.
// Its methods never return errors: any transport or parse failure is logged
// and degrades to an empty result, and none of them touch the stores. A nil
// service (no API key configured) behaves the same way.
type AIService struct {
	generator contentGenerator
}

// NewAIService builds the adapter against the Gemini API. Model defaults to
// gemini-2.0-flash when empty.
func NewAIService(ctx context.Context, apiKey, model string) (*AIService, error) {
	generator, err := newGeminiGenerator(ctx, apiKey, model)
	if err != nil {
		return nil, err
	}
	return &AIService{generator: generator}, nil
}

func (s *AIService) Enabled() bool {
	return s != nil && s.generator != nil
}

// ExtractRateEntries parses pasted free text into candidate catalog entries.
// Returns an empty slice on any failure.
func (s *AIService) ExtractRateEntries(ctx context.Context, freeText string) []models.RateEntryInput {
	if !s.Enabled() {
		return []models.RateEntryInput{}
	}

	prompt := strings.ReplaceAll(extractRatesPrompt, "{{TEXT}}", PrepareText(freeText))
	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("Rate extraction failed: %v", err)
		return []models.RateEntryInput{}
	}

	entries, err := parseRateEntries(raw)
	if err != nil {
		log.Printf("Rate extraction returned unusable data: %v", err)
		return []models.RateEntryInput{}
	}
	return entries
}

// ExtractTenderItems parses pasted tender text into candidate line items.
// Returns an empty slice on any failure.
func (s *AIService) ExtractTenderItems(ctx context.Context, freeText string) []models.TenderItemInput {
	if !s.Enabled() {
		return []models.TenderItemInput{}
	}

	prompt := strings.ReplaceAll(extractTenderPrompt, "{{TEXT}}", PrepareText(freeText))
	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("Tender extraction failed: %v", err)
		return []models.TenderItemInput{}
	}

	items, err := parseTenderItems(raw)
	if err != nil {
		log.Printf("Tender extraction returned unusable data: %v", err)
		return []models.TenderItemInput{}
	}
	return items
}

// FindBestMatch asks the model for the id of the closest catalog entry.
// Returns "" when there is no reasonable match or on any failure. An empty
// summary short-circuits without a remote call.
func (s *AIService) FindBestMatch(ctx context.Context, targetName, targetScope string, summary []models.CatalogSummary) string {
	if len(summary) == 0 {
		return ""
	}
	if !s.Enabled() {
		return ""
	}

	catalogJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Printf("Semantic match failed to marshal catalog summary: %v", err)
		return ""
	}

	prompt := strings.ReplaceAll(bestMatchPrompt, "{{NAME}}", targetName)
	prompt = strings.ReplaceAll(prompt, "{{SCOPE}}", targetScope)
	prompt = strings.ReplaceAll(prompt, "{{CATALOG_JSON}}", string(catalogJSON))

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("Semantic match failed: %v", err)
		return ""
	}

	id, err := parseBestMatch(raw)
	if err != nil {
		log.Printf("Semantic match returned unusable data: %v", err)
		return ""
	}
	return id
}

func parseRateEntries(raw string) ([]models.RateEntryInput, error) {
	cleaned := extractJSON(raw)

	var records []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &records); err != nil {
		return nil, fmt.Errorf("error parsing model response: %v", err)
	}

	entries := []models.RateEntryInput{}
	for _, record := range records {
		name := coerceString(record["name"])
		rate := coerceFloat(record["rate"])
		if name == "" || math.IsNaN(rate) || rate < 0 {
			continue
		}
		entries = append(entries, models.RateEntryInput{
			Name:        name,
			Unit:        coerceString(record["unit"]),
			Rate:        rate,
			ScopeOfWork: coerceString(record["scopeOfWork"]),
			Source:      coerceString(record["source"]),
		})
	}
	return entries, nil
}

func parseTenderItems(raw string) ([]models.TenderItemInput, error) {
	cleaned := extractJSON(raw)

	var records []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &records); err != nil {
		return nil, fmt.Errorf("error parsing model response: %v", err)
	}

	items := []models.TenderItemInput{}
	for _, record := range records {
		name := coerceString(record["name"])
		if name == "" {
			continue
		}

		quantity := coerceFloat(record["quantity"])
		if math.IsNaN(quantity) || quantity <= 0 {
			quantity = 1
		}

		item := models.TenderItemInput{
			Name:           name,
			Quantity:       quantity,
			RequestedScope: coerceString(record["requestedScope"]),
		}
		if estimate := coerceFloat(record["estimatedRate"]); !math.IsNaN(estimate) && estimate > 0 {
			item.EstimatedRate = &estimate
		}
		items = append(items, item)
	}
	return items, nil
}

func parseBestMatch(raw string) (string, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		// Some responses come back as a bare id string.
		var plain string
		if err2 := json.Unmarshal([]byte(cleaned), &plain); err2 != nil {
			return "", fmt.Errorf("error parsing model response: %v", err)
		}
		return normalizeMatchID(plain), nil
	}

	return normalizeMatchID(coerceString(data["id"])), nil
}

func normalizeMatchID(id string) string {
	id = strings.TrimSpace(id)
	switch strings.ToLower(id) {
	case "", "none", "null", "no match", "no-match":
		return ""
	}
	return id
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		trimmed = strings.ReplaceAll(trimmed, ",", "")
		trimmed = strings.TrimPrefix(trimmed, "₹")
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/fintracker/insights/internal/domain/entity"
	domainerror "github.com/fintracker/insights/internal/domain/error"
)

// defaultModelName is the Gemini model used when none is configured.
const defaultModelName = "gemini-2.5-flash-lite"

// promptTransactionLimit caps how many transactions are serialized into a
// prompt. Older records add token cost without improving answers.
const promptTransactionLimit = 50

// categoryListPrompt enumerates the closed category set for the model.
const categoryListPrompt = `food (restaurants, cafes, dining out)
grocery (supermarkets, food stores)
transport (gas, fuel, uber, public transit)
entertainment (movies, concerts, streaming services)
shopping (retail, clothing, online purchases)
housing (rent, mortgage, home expenses)
utilities (electric, water, internet, phone bills)
healthcare (medical, dental, pharmacy)
education (tuition, books, courses)
personal (haircuts, spa, fitness)
travel (hotels, flights, vacations)
subscription (regular memberships, subscriptions)
other_expense (miscellaneous expenses)
salary (regular employment income)
freelance (contract work, gigs)
gift (presents, donations received)
investment (returns from investments)
refund (returned purchases, reimbursements)
other_income (miscellaneous income)`

// GeminiService implements adapter.AIService using Google Gemini.
//
// The service fails loudly: every error is a *domainerror.ExternalServiceError
// and fallback substitution is left to the advisor.
type GeminiService struct {
	apiKey          string
	modelName       string
	temperature     float32
	maxOutputTokens int32
	timeout         time.Duration
	clientOptions   []option.ClientOption
}

// NewGeminiService creates a Gemini-backed AI service. An empty or blank
// API key is a configuration error; the caller must choose heuristic-only
// mode deliberately rather than receive a silently dead delegate.
// A non-positive timeout disables the per-call deadline.
func NewGeminiService(apiKey, modelName string, timeout time.Duration) (*GeminiService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, domainerror.NewConfigurationError(
			domainerror.ErrCodeAIMissingCredential,
			"gemini api key is required",
			domainerror.ErrAIMissingCredential,
		)
	}
	if modelName == "" {
		modelName = defaultModelName
	}

	return &GeminiService{
		apiKey:          apiKey,
		modelName:       modelName,
		temperature:     0.7,
		maxOutputTokens: 1024,
		timeout:         timeout,
		clientOptions:   []option.ClientOption{option.WithAPIKey(apiKey)},
	}, nil
}

// IsAvailable reports whether the service holds a credential.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// PredictCategory asks the model for exactly one category name.
func (s *GeminiService) PredictCategory(ctx context.Context, description string) (entity.CategoryID, error) {
	prompt := fmt.Sprintf(`Based on this transaction description, categorize it into EXACTLY ONE of these specific categories (don't make up new ones):
%s

Transaction: %q

Return only the category name (a single word from the list above) with no additional text.`, categoryListPrompt, description)

	text, err := s.generateText(ctx, prompt, false)
	if err != nil {
		return "", err
	}

	category := entity.CategoryID(strings.ToLower(strings.TrimSpace(text)))
	if !category.IsKnown() {
		return "", domainerror.NewExternalServiceError(
			domainerror.ErrCodeAIUnknownCategory,
			fmt.Sprintf("model returned category %q outside the known set", category),
			domainerror.ErrAIUnknownCategory,
		)
	}

	return category, nil
}

// merchantWire is the expected JSON shape for enrichment responses.
type merchantWire struct {
	MerchantName string `json:"merchantName"`
	Category     string `json:"category"`
	Icon         string `json:"icon"`
}

// EnrichTransaction asks the model for merchant information as JSON.
func (s *GeminiService) EnrichTransaction(ctx context.Context, description string) (*entity.MerchantInfo, error) {
	prompt := fmt.Sprintf(`Based on this transaction description, provide merchant information and determine its category. Use EXACTLY one of these specific categories (don't make up new ones):
%s

Transaction: %q

Format your response as a JSON object with the following structure:
{
  "merchantName": "Detected merchant name",
  "category": "Exactly one of the categories from the list above",
  "icon": "An emoji that represents this category"
}`, categoryListPrompt, description)

	var wire merchantWire
	if err := s.generateJSON(ctx, prompt, &wire); err != nil {
		return nil, err
	}

	category := entity.CategoryID(strings.ToLower(strings.TrimSpace(wire.Category)))
	if !category.IsKnown() {
		return nil, domainerror.NewExternalServiceError(
			domainerror.ErrCodeAIUnknownCategory,
			fmt.Sprintf("model returned category %q outside the known set", wire.Category),
			domainerror.ErrAIUnknownCategory,
		)
	}

	icon := wire.Icon
	if icon == "" {
		icon = category.Icon()
	}

	return &entity.MerchantInfo{
		Name:     wire.MerchantName,
		Category: category,
		Icon:     icon,
	}, nil
}

// insightWire is the expected JSON shape for insight responses.
type insightWire struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Action      string  `json:"action"`
	Amount      float64 `json:"amount"`
}

// GenerateInsights asks the model for 3-5 insights as a JSON array.
func (s *GeminiService) GenerateInsights(ctx context.Context, transactions []*entity.Transaction) ([]*entity.Insight, error) {
	data, err := s.transactionJSON(transactions)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Based on these financial transactions, generate 3-5 meaningful insights about spending patterns, income trends, or financial behaviors. For each insight, provide a title, a brief description, and an actionable suggestion.

Transactions: %s

Format your response as a JSON array with the following structure:
[
  {
    "title": "Insight title",
    "description": "Brief description of the insight",
    "action": "Suggested action the user could take",
    "amount": 0
  }
]`, data)

	var wires []insightWire
	if err := s.generateJSON(ctx, prompt, &wires); err != nil {
		return nil, err
	}

	result := make([]*entity.Insight, 0, len(wires))
	for _, w := range wires {
		if w.Title == "" || w.Description == "" {
			return nil, s.malformed("insight missing title or description")
		}
		result = append(result, entity.NewInsight(w.Title, w.Description, w.Action, decimalFromFloat(w.Amount)))
	}
	return result, nil
}

// budgetWire is the expected JSON shape for budget recommendation responses.
type budgetWire struct {
	Category          string   `json:"category"`
	CurrentBudget     *float64 `json:"currentBudget"`
	RecommendedBudget float64  `json:"recommendedBudget"`
	Reasoning         string   `json:"reasoning"`
	Icon              string   `json:"icon"`
}

// RecommendBudgets asks the model for budget adjustments as a JSON array.
func (s *GeminiService) RecommendBudgets(ctx context.Context, transactions []*entity.Transaction, budgets []*entity.Budget) ([]*entity.BudgetRecommendation, error) {
	data, err := s.transactionJSON(transactions)
	if err != nil {
		return nil, err
	}

	budgetData, err := json.Marshal(budgetPromptRecords(budgets))
	if err != nil {
		return nil, s.malformed("failed to serialize budgets")
	}

	prompt := fmt.Sprintf(`Based on these financial transactions and existing budgets, recommend 3-5 budget adjustments or new budget categories. Use EXACTLY the category names from this list:
%s

Transactions: %s
Existing Budgets: %s

Format your response as a JSON array with the following structure:
[
  {
    "category": "Category name",
    "currentBudget": null,
    "recommendedBudget": 0,
    "reasoning": "Brief explanation for this recommendation",
    "icon": "An emoji that represents this category"
  }
]`, categoryListPrompt, data, string(budgetData))

	var wires []budgetWire
	if err := s.generateJSON(ctx, prompt, &wires); err != nil {
		return nil, err
	}

	result := make([]*entity.BudgetRecommendation, 0, len(wires))
	for _, w := range wires {
		if w.Category == "" || w.RecommendedBudget < 0 {
			return nil, s.malformed("budget recommendation missing category or negative amount")
		}

		rec := &entity.BudgetRecommendation{
			Category:          entity.CategoryID(strings.ToLower(w.Category)),
			RecommendedBudget: decimalFromFloat(w.RecommendedBudget),
			Reasoning:         w.Reasoning,
			Icon:              w.Icon,
		}
		if rec.Icon == "" {
			rec.Icon = rec.Category.Icon()
		}
		if w.CurrentBudget != nil {
			current := decimalFromFloat(*w.CurrentBudget)
			rec.CurrentBudget = &current
		}
		result = append(result, rec)
	}
	return result, nil
}

// predictionWire is the expected JSON shape for expense prediction responses.
type predictionWire struct {
	TotalPredicted float64 `json:"totalPredicted"`
	Categories     []struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Icon   string  `json:"icon"`
	} `json:"categories"`
}

// PredictFutureExpenses asks the model for next month's spend by category.
func (s *GeminiService) PredictFutureExpenses(ctx context.Context, transactions []*entity.Transaction) (*entity.PredictionBundle, error) {
	data, err := s.transactionJSON(transactions)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Based on these financial transactions, predict future expenses for the next month by category.

Transactions: %s

Format your response as a JSON object with the following structure:
{
  "totalPredicted": 0,
  "categories": [
    {
      "name": "Category name",
      "amount": 0,
      "icon": "An emoji that represents this category"
    }
  ]
}`, data)

	var wire predictionWire
	if err := s.generateJSON(ctx, prompt, &wire); err != nil {
		return nil, err
	}

	bundle := &entity.PredictionBundle{
		TotalPredicted: decimalFromFloat(wire.TotalPredicted),
		Categories:     make([]entity.ExpensePrediction, 0, len(wire.Categories)),
	}
	for _, c := range wire.Categories {
		if c.Name == "" || c.Amount < 0 {
			return nil, s.malformed("prediction entry missing name or negative amount")
		}
		category := entity.CategoryID(strings.ToLower(c.Name))
		icon := c.Icon
		if icon == "" {
			icon = category.Icon()
		}
		bundle.Categories = append(bundle.Categories, entity.ExpensePrediction{
			Category: category,
			Amount:   decimalFromFloat(c.Amount),
			Icon:     icon,
		})
	}
	return bundle, nil
}

// actionWire is the expected JSON shape for action recommendation responses.
type actionWire struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Timeframe   string `json:"timeframe"`
}

// RecommendActions asks the model for 3-5 financial actions.
func (s *GeminiService) RecommendActions(ctx context.Context, transactions []*entity.Transaction) ([]*entity.ActionRecommendation, error) {
	data, err := s.transactionJSON(transactions)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Based on these financial transactions, provide 3-5 financial action recommendations.

Transactions: %s

Format your response as a JSON array with the following structure:
[
  {
    "title": "Recommendation title",
    "description": "Description of the recommendation",
    "impact": "High/Medium/Low",
    "timeframe": "Short-term/Medium-term/Long-term"
  }
]`, data)

	var wires []actionWire
	if err := s.generateJSON(ctx, prompt, &wires); err != nil {
		return nil, err
	}

	result := make([]*entity.ActionRecommendation, 0, len(wires))
	for _, w := range wires {
		if w.Title == "" || w.Description == "" {
			return nil, s.malformed("action missing title or description")
		}
		result = append(result, &entity.ActionRecommendation{
			Title:       w.Title,
			Description: w.Description,
			Impact:      normalizeImpact(w.Impact),
			Timeframe:   normalizeTimeframe(w.Timeframe),
		})
	}
	return result, nil
}

// generateText runs one generate-content call and returns the first text
// part of the first candidate.
func (s *GeminiService) generateText(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, s.clientOptions...)
	if err != nil {
		return "", domainerror.NewExternalServiceError(
			domainerror.ErrCodeAICallFailed,
			"failed to create gemini client",
			err,
		)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(s.temperature)
	model.SetMaxOutputTokens(s.maxOutputTokens)
	if jsonOutput {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", domainerror.NewExternalServiceError(
			domainerror.ErrCodeAICallFailed,
			"failed to generate content",
			err,
		)
	}

	text := extractText(resp)
	if text == "" {
		return "", domainerror.NewExternalServiceError(
			domainerror.ErrCodeAIEmptyResponse,
			"no text content in response",
			domainerror.ErrAIEmptyResponse,
		)
	}
	return text, nil
}

// generateJSON runs a generate-content call and unmarshals the response
// text into out, stripping the markdown code fences the model sometimes
// wraps around JSON.
func (s *GeminiService) generateJSON(ctx context.Context, prompt string, out any) error {
	text, err := s.generateText(ctx, prompt, true)
	if err != nil {
		return err
	}
	return parseModelJSON(text, out)
}

// parseModelJSON strips code fences and unmarshals the model's JSON output.
func parseModelJSON(text string, out any) error {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return domainerror.NewExternalServiceError(
			domainerror.ErrCodeAIMalformedResponse,
			"failed to parse JSON response",
			err,
		)
	}
	return nil
}

// extractText returns the first text part of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}

// transactionPromptRecord is the compact transaction view sent to the model.
type transactionPromptRecord struct {
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date"`
}

// transactionJSON serializes up to promptTransactionLimit transactions for
// prompt embedding.
func (s *GeminiService) transactionJSON(transactions []*entity.Transaction) (string, error) {
	if len(transactions) > promptTransactionLimit {
		transactions = transactions[:promptTransactionLimit]
	}

	records := make([]transactionPromptRecord, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, transactionPromptRecord{
			Title:    t.Title,
			Amount:   t.Amount.String(),
			Category: string(t.Category),
			Date:     t.Date.Format("2006-01-02"),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", s.malformed("failed to serialize transactions")
	}
	return string(data), nil
}

// budgetPromptRecord is the compact budget view sent to the model.
type budgetPromptRecord struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

func budgetPromptRecords(budgets []*entity.Budget) []budgetPromptRecord {
	records := make([]budgetPromptRecord, 0, len(budgets))
	for _, b := range budgets {
		records = append(records, budgetPromptRecord{
			Category: string(b.Category),
			Amount:   b.Amount.String(),
		})
	}
	return records
}

func (s *GeminiService) malformed(message string) error {
	return domainerror.NewExternalServiceError(
		domainerror.ErrCodeAIMalformedResponse,
		message,
		domainerror.ErrAIMalformedResponse,
	)
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"careerpath/api/internal/models"
)

// Stage discriminates the two planning requests.
type Stage string

const (
	StageOverview Stage = "overview"
	StageDetailed Stage = "detailed"
)

// StageRequest is the validated form of the raw {step, selectedPosition}
// parameters. Construct it with ParseStageRequest before touching the
// pipeline.
type StageRequest struct {
	Stage            Stage
	SelectedPosition string
}

func ParseStageRequest(step, selectedPosition string) (StageRequest, error) {
	switch Stage(step) {
	case StageOverview:
		return StageRequest{Stage: StageOverview}, nil
	case StageDetailed:
		selectedPosition = strings.TrimSpace(selectedPosition)
		if selectedPosition == "" {
			return StageRequest{}, &ValidationError{Msg: "selectedPosition is required for the detailed step"}
		}
		return StageRequest{Stage: StageDetailed, SelectedPosition: selectedPosition}, nil
	default:
		return StageRequest{}, &ValidationError{Msg: fmt.Sprintf("unknown analysis step %q", step)}
	}
}

// requiredStageFields are the top-level keys a response must carry to be
// accepted for a given stage.
var requiredStageFields = map[Stage][]string{
	StageOverview: {"current_position", "target_analysis", "gap_analysis", "position_options"},
	StageDetailed: {"selected_position", "detailed_plan"},
}

// RetryPolicy bounds the generation loop and derives each attempt's prompt.
type RetryPolicy struct {
	MaxAttempts int
}

// correctionFor returns the corrective suffix introduced at the given
// attempt: a moderate correction on the second try, a terse final warning
// on the third.
func (p RetryPolicy) correctionFor(attempt int) string {
	switch attempt {
	case 2:
		return "\n\nUWAGA: Poprzednia odpowiedź miała błąd JSON. MUSISZ zwrócić POPRAWNY JSON bez błędów składni."
	case 3:
		return "\n\nOSTATNIA SZANSA: Zwróć TYLKO poprawny JSON. Każdy string w cudzysłowach."
	default:
		return ""
	}
}

// PromptFor builds the full prompt for an attempt: the base prompt plus
// every correction accumulated so far. Pure, so any attempt's prompt is
// reproducible in isolation.
func (p RetryPolicy) PromptFor(base string, attempt int) string {
	var b strings.Builder
	b.WriteString(base)
	for a := 2; a <= attempt; a++ {
		b.WriteString(p.correctionFor(a))
	}
	return b.String()
}

const excerptLimit = 2000

func excerpt(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

var jsonFencePattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ExtractJSON pulls a candidate JSON object out of free-form model output.
// Precedence: a fenced ```json block, then a balanced-brace scan from the
// first '{', then the raw span between the first '{' and the last '}'.
func ExtractJSON(text string) (string, bool) {
	if m := jsonFencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	if candidate, ok := scanBalancedObject(text); ok {
		return candidate, true
	}

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first != -1 && last > first {
		return text[first : last+1], true
	}

	return "", false
}

// scanBalancedObject walks the text from the first '{' tracking brace depth
// and string state, returning the first complete top-level object. Unlike a
// greedy first-to-last match it is not confused by stray braces in the
// surrounding prose.
func scanBalancedObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

func validateStagePayload(stage Stage, payload map[string]json.RawMessage) error {
	for _, field := range requiredStageFields[stage] {
		raw, ok := payload[field]
		if !ok || string(raw) == "null" {
			return fmt.Errorf("missing required field %q for stage %s", field, stage)
		}
	}
	return nil
}

// Generator turns a composed prompt into a validated JSON object, retrying
// with corrective instructions when the model's output does not parse.
type Generator interface {
	Generate(ctx context.Context, stage Stage, prompt string) (json.RawMessage, *models.TokenStats, error)
}

type generator struct {
	gemini            GeminiService
	modelName         string
	systemInstruction string
	policy            RetryPolicy
}

func NewGenerator(gemini GeminiService, modelName, systemInstruction string, maxAttempts int) Generator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &generator{
		gemini:            gemini,
		modelName:         modelName,
		systemInstruction: systemInstruction,
		policy:            RetryPolicy{MaxAttempts: maxAttempts},
	}
}

// Generate implements Generator. Retries are strictly sequential; a
// provider failure on the final attempt propagates as ProviderError, any
// other exhaustion of the budget as ParsingError. No partial result is ever
// returned.
func (g *generator) Generate(ctx context.Context, stage Stage, prompt string) (json.RawMessage, *models.TokenStats, error) {
	var lastRaw, lastCandidate string

	for attempt := 1; attempt <= g.policy.MaxAttempts; attempt++ {
		log.Printf("🔄 Generation attempt %d/%d (stage %s)\n", attempt, g.policy.MaxAttempts, stage)

		raw, usage, err := g.gemini.GenerateContent(ctx, g.modelName, g.systemInstruction, g.policy.PromptFor(prompt, attempt))
		if err != nil {
			if attempt == g.policy.MaxAttempts {
				return nil, nil, &ProviderError{Err: err}
			}
			log.Printf("⚠️  Attempt %d failed: %v. Retrying...\n", attempt, err)
			continue
		}

		lastRaw = raw
		if strings.TrimSpace(raw) == "" {
			log.Printf("⚠️  Attempt %d returned an empty response\n", attempt)
			continue
		}

		candidate, ok := ExtractJSON(raw)
		if !ok {
			log.Printf("⚠️  Attempt %d: no JSON found in response\n", attempt)
			lastCandidate = ""
			continue
		}
		lastCandidate = candidate

		var payload map[string]json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
			log.Printf("⚠️  Attempt %d: invalid JSON: %v\n", attempt, err)
			continue
		}

		if err := validateStagePayload(stage, payload); err != nil {
			log.Printf("⚠️  Attempt %d: %v\n", attempt, err)
			continue
		}

		log.Printf("✅ Structure validated for stage %s on attempt %d\n", stage, attempt)
		return json.RawMessage(candidate), usage, nil
	}

	return nil, nil, &ParsingError{
		Attempts:         g.policy.MaxAttempts,
		RawExcerpt:       excerpt(lastRaw, excerptLimit),
		CandidateExcerpt: excerpt(lastCandidate, excerptLimit),
	}
}

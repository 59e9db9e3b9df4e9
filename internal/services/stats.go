package services

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log"
	"sort"
	"strings"
	"time"

	"careerpath/api/internal/models"
)

const (
	statsSkillsModelName    = "gemini-1.5-flash-8b"
	statsPositionsModelName = "gemini-1.5-flash"

	topStatsSkillsLimit    = 10
	topStatsPositionsLimit = 5
)

// Chart palette for the stats widget, cycled by item index.
var skillColorPairs = [][2]string{
	{"#3b82f6", "#60a5fa"},
	{"#8b5cf6", "#a78bfa"},
	{"#ec4899", "#f472b6"},
	{"#f59e0b", "#fbbf24"},
	{"#10b981", "#34d399"},
	{"#06b6d4", "#22d3ee"},
	{"#6366f1", "#818cf8"},
	{"#ef4444", "#f87171"},
}

var positionColors = []string{
	"#3b82f6", "#8b5cf6", "#ec4899", "#f59e0b",
	"#10b981", "#06b6d4", "#6366f1", "#ef4444",
}

// Cache is the slice of the Redis cache the stats service needs.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// PopularStatsService aggregates raw skill/technology/title lists into
// colorized display summaries. It feeds a non-critical widget: any model or
// parse failure degrades to empty lists instead of an error.
type PopularStatsService interface {
	PopularStats(ctx context.Context, req models.PopularStatsRequest) (*models.PopularStatsResponse, error)
}

type popularStatsService struct {
	gemini   GeminiService
	prompts  *PromptBuilder
	cache    Cache
	cacheTTL time.Duration
}

func NewPopularStatsService(gemini GeminiService, cache Cache, cacheTTL time.Duration) PopularStatsService {
	return &popularStatsService{
		gemini:   gemini,
		prompts:  NewPromptBuilder(),
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

type rawStatItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type rawSkillsResult struct {
	Skills       []rawStatItem `json:"skills"`
	Technologies []rawStatItem `json:"technologies"`
}

type rawPositionItem struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// PopularStats implements PopularStatsService.
func (s *popularStatsService) PopularStats(ctx context.Context, req models.PopularStatsRequest) (*models.PopularStatsResponse, error) {
	key := statsCacheKey(req)

	if s.cache != nil {
		var cached models.PopularStatsResponse
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			log.Println("✅ Popular stats served from cache")
			return &cached, nil
		}
	}

	resp := &models.PopularStatsResponse{
		Skills:       []models.SkillItem{},
		Technologies: []models.SkillItem{},
		Positions:    []models.JobPositionItem{},
	}

	if len(req.AllSkillsList) > 0 || len(req.AllTechnologiesList) > 0 {
		skills, technologies := s.analyzeSkills(ctx, req.AllSkillsList, req.AllTechnologiesList)
		resp.Skills = skills
		resp.Technologies = technologies
	}

	if len(req.AllTitles) > 0 {
		resp.Positions = s.analyzePositions(ctx, req.AllTitles)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, resp, s.cacheTTL); err != nil {
			log.Printf("⚠️  Failed to cache popular stats: %v\n", err)
		}
	}

	return resp, nil
}

func (s *popularStatsService) analyzeSkills(ctx context.Context, skillsList, technologiesList []string) ([]models.SkillItem, []models.SkillItem) {
	prompt := s.prompts.BuildSkillsStatsPrompt(skillsList, technologiesList)
	if prompt == "" {
		return []models.SkillItem{}, []models.SkillItem{}
	}

	log.Println("🤖 Popular stats: querying model for skills/technologies...")

	raw, _, err := s.gemini.GenerateContent(ctx, statsSkillsModelName, StatsSkillsSystemInstruction, prompt)
	if err != nil {
		log.Printf("⚠️  Popular stats skills generation failed: %v\n", err)
		return []models.SkillItem{}, []models.SkillItem{}
	}

	candidate, ok := ExtractJSON(raw)
	if !ok {
		log.Println("⚠️  Popular stats: no JSON in skills response")
		return []models.SkillItem{}, []models.SkillItem{}
	}

	var parsed rawSkillsResult
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		log.Printf("⚠️  Popular stats: invalid skills JSON: %v\n", err)
		return []models.SkillItem{}, []models.SkillItem{}
	}

	skills := colorizeStatItems(parsed.Skills, 0)
	technologies := colorizeStatItems(parsed.Technologies, len(skills))
	return skills, technologies
}

func (s *popularStatsService) analyzePositions(ctx context.Context, titles []string) []models.JobPositionItem {
	prompt := s.prompts.BuildPositionsStatsPrompt(titles)

	log.Println("🤖 Popular stats: querying model for positions...")

	raw, _, err := s.gemini.GenerateContent(ctx, statsPositionsModelName, StatsPositionsSystemInstruction, prompt)
	if err != nil {
		log.Printf("⚠️  Popular stats positions generation failed: %v\n", err)
		return []models.JobPositionItem{}
	}

	candidate, ok := extractJSONArray(raw)
	if !ok {
		log.Println("⚠️  Popular stats: no JSON in positions response")
		return []models.JobPositionItem{}
	}

	var parsed []rawPositionItem
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		log.Printf("⚠️  Popular stats: invalid positions JSON: %v\n", err)
		return []models.JobPositionItem{}
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].Count > parsed[j].Count
	})
	if len(parsed) > topStatsPositionsLimit {
		parsed = parsed[:topStatsPositionsLimit]
	}

	positions := make([]models.JobPositionItem, 0, len(parsed))
	for i, item := range parsed {
		positions = append(positions, models.JobPositionItem{
			Title: item.Title,
			Count: item.Count,
			Color: positionColors[i%len(positionColors)],
		})
	}
	return positions
}

func colorizeStatItems(items []rawStatItem, colorOffset int) []models.SkillItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if len(items) > topStatsSkillsLimit {
		items = items[:topStatsSkillsLimit]
	}

	out := make([]models.SkillItem, 0, len(items))
	for i, item := range items {
		pair := skillColorPairs[(colorOffset+i)%len(skillColorPairs)]
		out = append(out, models.SkillItem{
			Name:          item.Name,
			Count:         item.Count,
			Color:         pair[0],
			GradientColor: pair[1],
		})
	}
	return out
}

// extractJSONArray mirrors ExtractJSON for array payloads.
func extractJSONArray(text string) (string, bool) {
	if m := jsonFencePattern.FindStringSubmatch(text); m != nil {
		inner := strings.TrimSpace(m[1])
		if strings.HasPrefix(inner, "[") {
			return inner, true
		}
	}

	first := strings.Index(text, "[")
	last := strings.LastIndex(text, "]")
	if first != -1 && last > first {
		return text[first : last+1], true
	}

	return "", false
}

func statsCacheKey(req models.PopularStatsRequest) string {
	h := fnv.New64a()
	for _, part := range [][]string{req.AllSkillsList, req.AllTechnologiesList, req.AllTitles} {
		for _, v := range part {
			h.Write([]byte(v))
			h.Write([]byte{0})
		}
		h.Write([]byte{1})
	}
	return fmt.Sprintf("popular-stats:%x", h.Sum64())
}

package services

import (
	"strings"

	"careerpath/api/internal/models"
)

// NoInformation fills any requirement category the model analysis said
// nothing about, so every RequirementSet has six non-empty lists.
const NoInformation = "Brak informacji"

const bulletPrefix = "- "

// analysisMarkers are the section headers the analysis prompt demands,
// in the order the model is told to emit them.
var analysisMarkers = []string{
	"UMIEJĘTNOŚCI:",
	"TECHNOLOGIE / NARZĘDZIA:",
	"DOŚWIADCZENIE:",
	"WYKSZTAŁCENIE / CERTYFIKATY:",
	"JĘZYKI OBCE:",
	"INNE WYMAGANIA:",
}

// ParseRequirementAnalysis converts the model's free-text analysis into a
// RequirementSet. Each section spans from the end of its marker to the next
// marker present in the text; missing markers yield empty sections, which
// are then filled with the NoInformation sentinel.
func ParseRequirementAnalysis(text string) models.RequirementSet {
	offsets := make([]int, len(analysisMarkers))
	for i, marker := range analysisMarkers {
		offsets[i] = strings.Index(text, marker)
	}

	sections := make([][]string, len(analysisMarkers))
	for i, marker := range analysisMarkers {
		start := offsets[i]
		if start == -1 {
			continue
		}
		start += len(marker)

		end := len(text)
		for j := i + 1; j < len(analysisMarkers); j++ {
			if offsets[j] != -1 {
				end = offsets[j]
				break
			}
		}

		sections[i] = extractListItems(text[start:end])
	}

	for i := range sections {
		if len(sections[i]) == 0 {
			sections[i] = []string{NoInformation}
		}
	}

	return models.RequirementSet{
		Skills:            sections[0],
		Technologies:      sections[1],
		Experience:        sections[2],
		Education:         sections[3],
		Languages:         sections[4],
		OtherRequirements: sections[5],
	}
}

func extractListItems(section string) []string {
	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, bulletPrefix) {
			items = append(items, strings.TrimSpace(line[len(bulletPrefix):]))
		}
	}
	return items
}

// ContainsRequiredSections reports whether a raw analysis carries at least
// the three leading section markers. Used to reject degenerate model output
// before parsing and persisting it.
func ContainsRequiredSections(text string) bool {
	return strings.Contains(text, analysisMarkers[0]) &&
		strings.Contains(text, analysisMarkers[1]) &&
		strings.Contains(text, analysisMarkers[2])
}

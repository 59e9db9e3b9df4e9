package services

import (
	"reflect"
	"strings"
	"testing"
)

const sampleAnalysis = `UMIEJĘTNOŚCI:
- Komunikacja
- Praca w zespole

TECHNOLOGIE / NARZĘDZIA:
- Go
- PostgreSQL
- Redis

DOŚWIADCZENIE:
- 3 lata w backendzie

WYKSZTAŁCENIE / CERTYFIKATY:
- Wykształcenie wyższe informatyczne

JĘZYKI OBCE:
- Angielski B2

INNE WYMAGANIA:
- Prawo jazdy kat. B
`

func TestParseRequirementAnalysis_AllSections(t *testing.T) {
	result := ParseRequirementAnalysis(sampleAnalysis)

	if want := []string{"Komunikacja", "Praca w zespole"}; !reflect.DeepEqual(result.Skills, want) {
		t.Errorf("Skills = %v, want %v", result.Skills, want)
	}
	if want := []string{"Go", "PostgreSQL", "Redis"}; !reflect.DeepEqual(result.Technologies, want) {
		t.Errorf("Technologies = %v, want %v", result.Technologies, want)
	}
	if want := []string{"3 lata w backendzie"}; !reflect.DeepEqual(result.Experience, want) {
		t.Errorf("Experience = %v, want %v", result.Experience, want)
	}
	if want := []string{"Wykształcenie wyższe informatyczne"}; !reflect.DeepEqual(result.Education, want) {
		t.Errorf("Education = %v, want %v", result.Education, want)
	}
	if want := []string{"Angielski B2"}; !reflect.DeepEqual(result.Languages, want) {
		t.Errorf("Languages = %v, want %v", result.Languages, want)
	}
	if want := []string{"Prawo jazdy kat. B"}; !reflect.DeepEqual(result.OtherRequirements, want) {
		t.Errorf("OtherRequirements = %v, want %v", result.OtherRequirements, want)
	}
}

func TestParseRequirementAnalysis_MissingMarkersGetSentinel(t *testing.T) {
	text := `UMIEJĘTNOŚCI:
- Analityczne myślenie

DOŚWIADCZENIE:
- Rok pracy z klientem
`

	result := ParseRequirementAnalysis(text)

	if want := []string{"Analityczne myślenie"}; !reflect.DeepEqual(result.Skills, want) {
		t.Errorf("Skills = %v, want %v", result.Skills, want)
	}
	// With TECHNOLOGIE missing, the skills section must still end at the
	// next marker that is present.
	for _, skill := range result.Skills {
		if strings.Contains(skill, "klientem") {
			t.Errorf("Skills absorbed a later section: %v", result.Skills)
		}
	}
	if want := []string{NoInformation}; !reflect.DeepEqual(result.Technologies, want) {
		t.Errorf("Technologies = %v, want %v", result.Technologies, want)
	}
	if want := []string{"Rok pracy z klientem"}; !reflect.DeepEqual(result.Experience, want) {
		t.Errorf("Experience = %v, want %v", result.Experience, want)
	}
	if want := []string{NoInformation}; !reflect.DeepEqual(result.Languages, want) {
		t.Errorf("Languages = %v, want %v", result.Languages, want)
	}
}

func TestParseRequirementAnalysis_EmptyText(t *testing.T) {
	result := ParseRequirementAnalysis("")

	sentinel := []string{NoInformation}
	for name, got := range map[string][]string{
		"Skills":            result.Skills,
		"Technologies":      result.Technologies,
		"Experience":        result.Experience,
		"Education":         result.Education,
		"Languages":         result.Languages,
		"OtherRequirements": result.OtherRequirements,
	} {
		if !reflect.DeepEqual(got, sentinel) {
			t.Errorf("%s = %v, want %v", name, got, sentinel)
		}
	}
}

func TestParseRequirementAnalysis_IgnoresNonBulletLines(t *testing.T) {
	text := `UMIEJĘTNOŚCI:
Ogólny opis bez myślnika
- Samodzielność
  - Dokładność

TECHNOLOGIE / NARZĘDZIA:
- Docker
`

	result := ParseRequirementAnalysis(text)

	want := []string{"Samodzielność", "Dokładność"}
	if !reflect.DeepEqual(result.Skills, want) {
		t.Errorf("Skills = %v, want %v", result.Skills, want)
	}
}

func TestContainsRequiredSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"full analysis", sampleAnalysis, true},
		{"only first marker", "UMIEJĘTNOŚCI:\n- X", false},
		{"missing experience", "UMIEJĘTNOŚCI:\nTECHNOLOGIE / NARZĘDZIA:\n", false},
		{"first three present", "UMIEJĘTNOŚCI:\nTECHNOLOGIE / NARZĘDZIA:\nDOŚWIADCZENIE:\n", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsRequiredSections(tt.text); got != tt.want {
				t.Errorf("ContainsRequiredSections() = %v, want %v", got, tt.want)
			}
		})
	}
}

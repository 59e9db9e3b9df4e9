package services

import (
	"fmt"
	"strings"

	"careerpath/api/internal/models"
)

// System instruction for the two-stage career planning flow.
const CareerSystemInstruction = "Jesteś doświadczonym doradcą kariery i ekspertem HR z głęboką wiedzą o rynku pracy (w tym rynku polskim i międzynarodowym). " +
	"Analizujesz profil zawodowy użytkownika w 4 krokach: " +
	"1. OBECNE STANOWISKO - określasz aktualne stanowisko i poziom na podstawie CV i doświadczenia " +
	"2. CEL KARIERY - na podstawie ofert do których się aplikuje określasz docelowe stanowisko " +
	"3. GAP ANALYSIS - porównujesz obecne umiejętności z wymaganiami docelowymi i identyfikujesz luki " +
	"4. PLAN UZUPEŁNIENIA - konkretny plan działań (kursy, certyfikaty, projekty, książki, LinkedIn) do osiągnięcia celu w krótkim czasie " +
	"5. DALSZY ROZWÓJ - 2 realistyczne ścieżki rozwoju WYŻEJ od docelowego stanowiska " +
	"Każdy element planu musi być szczegółowo opisany, wyceniony i oszacowany czasowo. " +
	"Skup się na praktycznych, wykonalnych działaniach które można udokumentować i wykorzystać w CV. " +
	"WAŻNE: Jeśli proponujesz certyfikat, ZAWSZE poprzedź go kursem przygotowującym w tej samej umiejętności. " +
	"PRZYKŁAD: Jeśli chcesz certyfikat AWS, najpierw dodaj kurs AWS, potem certyfikat AWS w tej samej umiejętności. " +
	"WAŻNE: Używaj poziomów umiejętności po polsku: 'początkujący', 'średniozaawansowany', 'zaawansowany', 'ekspert'. " +
	"Odpowiadaj WYŁĄCZNIE w postaci czystego, poprawnego JSON-a bez dodatkowych komentarzy, formatowania markdown ani tekstów spoza JSON."

// System instruction for single-offer requirement analysis.
const AnalysisSystemInstruction = "Jesteś doświadczonym rekruterem HR z wieloletnim doświadczeniem w różnych branżach. " +
	"Twoim zadaniem jest analizowanie ofert pracy i wyodrębnianie kluczowych informacji: " +
	"umiejętności, technologii/narzędzi, doświadczenia, wykształcenia, języków i innych wymagań. " +
	"Każdą umiejętność którą opisujesz staraj sie opisać w maksymalnie 3 słowach. " +
	"Każdą technologię i umiejętność wydziel jako osobną pozycję, zamiast wypisywać po przecinku. " +
	"Zwracaj wyniki zawsze w określonym formacie. Nie dodawaj nic od siebie."

const StatsSkillsSystemInstruction = `Jesteś ekspertem ds. analizy danych z rynku pracy. Twoim zadaniem jest analiza list umiejętności i technologii.
Zwróć listę maksymalnie 10 najpopularniejszych unikalnych umiejętności oraz maksymalnie 10 najpopularniejszych unikalnych technologii.
Dla każdej pozycji podaj nazwę ('name') i liczbę wystąpień ('count').
Wynik zwróć w formacie JSON jako obiekt z dwoma kluczami: 'skills' i 'technologies'.
Przykład: { "skills": [{ "name": "JavaScript", "count": 5 }, ...], "technologies": [{ "name": "React", "count": 8 }, ...] }.
Jeśli lista wejściowa jest pusta dla danej kategorii, zwróć pustą listę w JSON dla tej kategorii.`

const StatsPositionsSystemInstruction = `Jesteś ekspertem ds. rekrutacji i analizy rynku pracy.

Twoim zadaniem jest przeanalizować listę tytułów stanowisk i wyciągnąć 5 które powtarzają się najczęściej.

Uwzględnij:
- Stanowiska pokrewne np. Przedstawiciel handlowy-Handlowiec,
- uwzględnij poziom stanowiska (Junior, Senior),
- język (polski/angielski),
- najlepiej jak zgadzają się minimum 2 słowa z tytułu,

Wynik:
Zwróć tablicę obiektów JSON, gdzie:
- title to nazwa zagregowanej kategorii zawodowej (np. "Przedstawiciel handlowy", "Menager", "Kierownik"),
- count to liczba stanowisk pasujących do tej kategorii (minimum 2).

Zignoruj unikalne stanowiska, które nie pasują do żadnej grupy.
Zwróć pustą tablicę, jeśli nic nie można zagregować.

Przykład wyjścia:
[
  { "title": "Przedstawiciel handlowy", "count": 9 },
  { "title": "Menager", "count": 2 }
]`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// OfferTitlesByStatus carries the status-grouped offer titles the overview
// prompt lists verbatim.
type OfferTitlesByStatus struct {
	Sent       []string
	Interested []string
	Saved      []string
}

// BuildOverviewPrompt creates the first-stage prompt: infer the current
// position, analyse targets and gaps, and propose exactly two positions.
func (pb *PromptBuilder) BuildOverviewPrompt(profileJSON string, titles OfferTitlesByStatus, market models.MarketSnapshot) string {
	positionLines := make([]string, 0, len(market.TargetPositions))
	for _, p := range market.TargetPositions {
		positionLines = append(positionLines, fmt.Sprintf("%s (%d razy)", p.Position, p.Frequency))
	}

	return fmt.Sprintf(`
PRZEPROWADŹ WSTĘPNĄ ANALIZĘ KARIERY I ZAPROPONUJ 2 POZYCJE DO WYBORU:

DANE UŻYTKOWNIKA:
%s

OFERTY PRACY - ANALIZA CELÓW:
Wysłane aplikacje (%d): %s
Oferty zainteresowane (%d): %s
Zapisane oferty (%d): %s

NAJCZĘŚCIEJ APLIKOWANE STANOWISKA:
%s

WYMAGANIA RYNKOWE:
Najczęściej wymagane umiejętności: %s
Najczęściej wymagane technologie: %s

WYGENERUJ WSTĘPNĄ ANALIZĘ Z 2 POZYCJAMI DO WYBORU:

{
  "current_position": {
    "title": "Aktualny tytuł stanowiska na podstawie CV",
    "level": "junior/mid/senior/lead/manager",
    "industry": "Branża",
    "key_strengths": ["lista mocnych stron z CV"],
    "years_of_experience": liczba_lat
  },
  "target_analysis": {
    "most_applied_positions": ["najczęściej aplikowane stanowiska"],
    "target_industries": ["docelowe branże"],
    "salary_expectations": "oczekiwany zakres zarobków",
    "common_requirements": ["wspólne wymagania w ofertach"]
  },
  "gap_analysis": {
    "missing_skills_critical": ["umiejętności kluczowe których brakuje"],
    "missing_skills_nice_to_have": ["umiejętności dodatkowe"],
    "experience_gaps": ["braki w doświadczeniu"],
    "education_gaps": ["braki edukacyjne"]
  },
  "position_options": [
    {
      "id": "option1",
      "title": "Nazwa pierwszej pozycji",
      "description": "Dlaczego ta pozycja jest odpowiednia dla użytkownika",
      "match_score": 85,
      "salary_range": "6000-9000 PLN",
      "difficulty": 3,
      "timeline": "3-6 miesięcy",
      "key_requirements": ["główne wymagania do spełnienia"],
      "why_good_fit": "Uzasadnienie dlaczego to dobry wybór"
    },
    {
      "id": "option2",
      "title": "Nazwa drugiej pozycji",
      "description": "Dlaczego ta pozycja jest odpowiednia dla użytkownika",
      "match_score": 78,
      "salary_range": "7000-11000 PLN",
      "difficulty": 4,
      "timeline": "6-9 miesięcy",
      "key_requirements": ["główne wymagania do spełnienia"],
      "why_good_fit": "Uzasadnienie dlaczego to dobry wybór"
    }
  ]
}

ZASADY:
- Pierwsza pozycja powinna być bardziej realistyczna (wyższy match_score)
- Druga pozycja może być bardziej ambitna
- Obydwie muszą być logiczne na podstawie danych użytkownika
- Koniecznie uzasadnij każdy wybór

Zwróć TYLKO poprawny JSON bez dodatkowych tekstów.`,
		profileJSON,
		len(titles.Sent), strings.Join(titles.Sent, ", "),
		len(titles.Interested), strings.Join(titles.Interested, ", "),
		len(titles.Saved), strings.Join(titles.Saved, ", "),
		strings.Join(positionLines, "\n"),
		strings.Join(market.MostRequiredSkills, ", "),
		strings.Join(market.MostRequiredTechnologies, ", "),
	)
}

// BuildDetailedPrompt creates the second-stage prompt for the position the
// user picked from the overview.
func (pb *PromptBuilder) BuildDetailedPrompt(profileJSON, selectedPosition string, market models.MarketSnapshot) string {
	return fmt.Sprintf(`
STWÓRZ SZCZEGÓŁOWY PLAN KARIERY DLA WYBRANEJ POZYCJI: "%[1]s"

DANE UŻYTKOWNIKA:
%[2]s

WYMAGANIA RYNKOWE:
Najczęściej wymagane umiejętności: %[3]s
Najczęściej wymagane technologie: %[4]s

WYGENERUJ SZCZEGÓŁOWY PLAN W FORMACIE:

{
  "selected_position": "%[1]s",
  "detailed_plan": {
    "target_position": "%[1]s",
    "estimated_timeline": "6-9 miesięcy",
    "success_probability": 8,
    "total_estimated_cost": "2000-4000 PLN",
    "preparation_phase": {
      "title": "Przygotowanie do stanowiska %[1]s",
      "duration_months": 4,
      "skill_gaps": [
        {
          "skill_name": "Nazwa umiejętności",
          "current_level": "początkujący/średniozaawansowany/zaawansowany/ekspert",
          "required_level": "średniozaawansowany/zaawansowany/ekspert",
          "gap_size": "small/medium/large",
          "actions": [
            {
              "id": "action1",
              "title": "Konkretny kurs/certyfikat/projekt",
              "description": "Szczegółowy opis co i jak zrobić",
              "type": "course/certification/project/book/linkedin/social",
              "estimated_weeks": 4,
              "cost_range": "200-800 PLN",
              "priority": "high/medium/low",
              "measurable_outcome": "Co konkretnie osiągniemy"
            }
          ]
        }
      ]
    },
    "application_phase": {
      "title": "Zdobycie stanowiska %[1]s",
      "duration_months": 2,
      "strategy": [
        {
          "id": "strategy1",
          "title": "Strategia aplikacji",
          "description": "Jak i gdzie aplikować",
          "type": "networking",
          "estimated_weeks": 2,
          "cost_range": "0-300 PLN",
          "priority": "high",
          "measurable_outcome": "Zdobycie stanowiska"
        }
      ]
    },
    "future_development": [
      {
        "id": "path1",
        "title": "Opcja rozwoju 1",
        "next_position": "Wyższe stanowisko A",
        "timeline_months": 12,
        "description": "Opis pierwszej opcji rozwoju"
      },
      {
        "id": "path2",
        "title": "Opcja rozwoju 2",
        "next_position": "Wyższe stanowisko B",
        "timeline_months": 15,
        "description": "Opis drugiej opcji rozwoju"
      }
    ]
  }
}

ZASADY:
- Koncentruj się na konkretnej wybranej pozycji
- Wszystkie działania muszą prowadzić do tego celu
- Plan musi być realistyczny i wykonalny
- Każde działanie z konkretnym rezultatem
- JEŚLI proponujesz certyfikat, ZAWSZE poprzedź go kursem tej samej umiejętności
- Używaj polskich poziomów umiejętności: początkujący, średniozaawansowany, zaawansowany, ekspert

Zwróć TYLKO poprawny JSON bez dodatkowych tekstów.`,
		selectedPosition,
		profileJSON,
		strings.Join(market.MostRequiredSkills, ", "),
		strings.Join(market.MostRequiredTechnologies, ", "),
	)
}

// BuildRequirementAnalysisPrompt creates the prompt whose response the
// requirement extraction parser consumes.
func (pb *PromptBuilder) BuildRequirementAnalysisPrompt(jobDescription string) string {
	return fmt.Sprintf(`
Zanalizuj poniższą ofertę pracy i wypisz w osobnych sekcjach:

1. Wymagane umiejętności (zarówno twarde jak i miękkie)
2. Technologie i narzędzia (np. języki programowania, oprogramowanie, frameworki, urządzenia, maszyny)
3. Doświadczenie zawodowe (np. lata, typ pracy, branża)
4. Wykształcenie i certyfikaty (jeśli są wymienione)
5. Języki obce (oraz ich poziom jeśli jest wymieniony)
6. Inne wymagania (np. prawo jazdy, gotowość do podróży, dyspozycyjność)

Jeśli oferta dotyczy branży nietechnicznej, dostosuj kategorie tak, aby były odpowiednie dla danej branży.
W przypadku kategorii, dla których nie ma informacji w ofercie, napisz tylko "- Brak informacji".

Zwróć wynik DOKŁADNIE w poniższym formacie (nie dodawaj nic od siebie):

UMIEJĘTNOŚCI:
- ...

TECHNOLOGIE / NARZĘDZIA:
- ...

DOŚWIADCZENIE:
- ...

WYKSZTAŁCENIE / CERTYFIKATY:
- ...

JĘZYKI OBCE:
- ...

INNE WYMAGANIA:
- ...

Treść oferty:
"""
%s
"""`, jobDescription)
}

func (pb *PromptBuilder) BuildSkillsStatsPrompt(skills, technologies []string) string {
	var parts []string
	if len(skills) > 0 {
		parts = append(parts, fmt.Sprintf("Przeanalizuj następującą listę umiejętności: %s.", strings.Join(skills, ", ")))
	}
	if len(technologies) > 0 {
		parts = append(parts, fmt.Sprintf("Przeanalizuj następującą listę technologii: %s.", strings.Join(technologies, ", ")))
	}
	return strings.Join(parts, "\n")
}

func (pb *PromptBuilder) BuildPositionsStatsPrompt(titles []string) string {
	return fmt.Sprintf("Przeanalizuj następującą listę tytułów stanowisk i zwróć zagregowane kategorie: %s.", strings.Join(titles, ", "))
}

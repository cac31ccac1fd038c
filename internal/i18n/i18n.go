package i18n

import "strings"

// Language is the persisted locale preference.
type Language string

const (
	LangEN Language = "en"
	LangFI Language = "fi"
)

// DefaultLanguage is used whenever the stored preference is missing or invalid.
const DefaultLanguage = LangEN

// Parse maps a stored preference value to a supported Language.
// Anything unrecognized falls back to the default locale.
func Parse(v string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(v))) {
	case LangEN:
		return LangEN
	case LangFI:
		return LangFI
	default:
		return DefaultLanguage
	}
}

// Supported reports whether v names a supported locale exactly.
func Supported(v string) bool {
	l := Language(strings.ToLower(strings.TrimSpace(v)))
	return l == LangEN || l == LangFI
}

// Message keys.
const (
	KeyNoPhotos           = "analysis.no_photos"
	KeyRetakePhotos       = "analysis.retake_photos"
	KeyInvalidEmail       = "email.invalid_address"
	KeyEmailRetry         = "email.retry"
	KeyUnansweredRequired = "manual.unanswered_required"
	KeyReportSubject      = "report.subject"
	KeyReportSurvey       = "report.survey_section"
	KeyReportManual       = "report.manual_section"
	KeyReportAuthor       = "report.author"
	KeyReportDate         = "report.date"
	KeyReportNoAnswer     = "report.no_answer"
)

var tables = map[Language]map[string]string{
	LangEN: {
		KeyNoPhotos:           "Add at least one photo before requesting analysis.",
		KeyRetakePhotos:       "Please retake the photos and try again.",
		KeyInvalidEmail:       "The email address is not valid.",
		KeyEmailRetry:         "Sending failed, please try again.",
		KeyUnansweredRequired: "Please answer the required questions first:",
		KeyReportSubject:      "Building inspection report",
		KeyReportSurvey:       "Photo inspection",
		KeyReportManual:       "Additional questions",
		KeyReportAuthor:       "Inspector",
		KeyReportDate:         "Date",
		KeyReportNoAnswer:     "No answer",
	},
	LangFI: {
		KeyNoPhotos:           "Lisää vähintään yksi kuva ennen analyysin pyytämistä.",
		KeyRetakePhotos:       "Ota kuvat uudelleen ja yritä uudestaan.",
		KeyInvalidEmail:       "Sähköpostiosoite ei ole kelvollinen.",
		KeyEmailRetry:         "Lähetys epäonnistui, yritä uudelleen.",
		KeyUnansweredRequired: "Vastaa ensin pakollisiin kysymyksiin:",
		KeyReportSubject:      "Kiinteistön tarkastusraportti",
		KeyReportSurvey:       "Kuvatarkastus",
		KeyReportManual:       "Lisäkysymykset",
		KeyReportAuthor:       "Tarkastaja",
		KeyReportDate:         "Päivämäärä",
		KeyReportNoAnswer:     "Ei vastausta",
	},
}

// T looks up a message for the given language. Lookups are pure: the result
// depends only on the arguments. Unknown keys fall back to the English table,
// then to the key itself so a missing entry is visible instead of blank.
func T(lang Language, key string) string {
	if m, ok := tables[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := tables[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

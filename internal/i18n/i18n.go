// Package i18n holds the fixed regional language set and the localized
// string tables the service needs: chat/mic error messages, news feed
// labels, the government form and its demo advisories, and the crop
// advisory example prompts.
package i18n

import "github.com/kisanmitra/kisanmitra/internal/domain"

var languages = []domain.Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "हिन्दी"},
	{Code: "bn", Name: "বাংলা"},
	{Code: "te", Name: "తెలుగు"},
	{Code: "mr", Name: "मराठी"},
	{Code: "ta", Name: "தமிழ்"},
	{Code: "gu", Name: "ગુજરાતી"},
	{Code: "kn", Name: "ಕನ್ನಡ"},
	{Code: "ml", Name: "മലയാളം"},
	{Code: "pa", Name: "ਪੰਜਾਬੀ"},
	{Code: "or", Name: "ଓଡ଼ିଆ"},
}

// Languages returns the fixed language set, default first
func Languages() []domain.Language {
	out := make([]domain.Language, len(languages))
	copy(out, languages)
	return out
}

// Default returns the default language (English)
func Default() domain.Language {
	return languages[0]
}

// ByCode looks up a language by its code
func ByCode(code string) (domain.Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return domain.Language{}, false
}

// ByName looks up a language by its display name
func ByName(name string) (domain.Language, bool) {
	for _, l := range languages {
		if l.Name == name {
			return l, true
		}
	}
	return domain.Language{}, false
}

// ChatStrings are the localized strings of the advisory chat
type ChatStrings struct {
	Thinking         string `json:"thinking"`
	Sources          string `json:"sources"`
	InputPlaceholder string `json:"input_placeholder"`
	StartPrompt      string `json:"start_prompt"`
	Error            string `json:"error"`
	MicError         string `json:"mic_error"`
	MicErrorNetwork  string `json:"mic_error_network"`
	UploadImage      string `json:"upload_image"`
}

// NewsStrings are the localized strings of the market/weather feed
type NewsStrings struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Loading     string            `json:"loading"`
	Refresh     string            `json:"refresh"`
	ReadMore    string            `json:"read_more"`
	Categories  map[string]string `json:"categories"`
	Error       string            `json:"error"`
}

// GovStrings are the localized strings of the government-services form
type GovStrings struct {
	Title              string            `json:"title"`
	Subtitle           string            `json:"subtitle"`
	FormName           string            `json:"form_name"`
	FormLocation       string            `json:"form_location"`
	FormType           string            `json:"form_type"`
	FormMessage        string            `json:"form_message"`
	FormSubmit         string            `json:"form_submit"`
	Success            string            `json:"success"`
	SuccessMsg         string            `json:"success_msg"`
	QueryTypes         []string          `json:"query_types"`
	Advisories         string            `json:"advisories"`
	AdvisoriesSubtitle string            `json:"advisories_subtitle"`
	DemoAdvisories     []domain.Advisory `json:"demo_advisories"`
}

// AdvisoryStrings are the localized strings of the crop advisory entry view
type AdvisoryStrings struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Prompts     []string `json:"prompts"`
}

// Strings is the full localized string table for one language
type Strings struct {
	AppTitle     string          `json:"app_title"`
	Chat         ChatStrings     `json:"chat"`
	News         NewsStrings     `json:"news"`
	Gov          GovStrings      `json:"gov"`
	CropAdvisory AdvisoryStrings `json:"crop_advisory"`
}

// Lookup returns the string table for a language code, falling back to
// English for unknown codes
func Lookup(code string) Strings {
	if s, ok := tables[code]; ok {
		return s
	}
	return tables["en"]
}

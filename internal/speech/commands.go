package speech

import "strings"

// CommandKind is what a matched voice command asks for
type CommandKind string

const (
	// CommandNavigate switches to a named view
	CommandNavigate CommandKind = "navigate"
	// CommandSend submits the composed input
	CommandSend CommandKind = "send"
	// CommandChangeLanguage switches the interface language
	CommandChangeLanguage CommandKind = "change_language"
)

// Command is a recognized voice command. Target carries the view id for
// navigation and the spoken language name for a language change.
type Command struct {
	Kind   CommandKind `json:"kind"`
	Target string      `json:"target,omitempty"`
}

// View ids addressable by voice
const (
	ViewDashboard     = "dashboard"
	ViewCropAdvisory  = "crop_advisory"
	ViewMarketWeather = "market_weather"
	ViewGovConnect    = "gov_connect"
)

// viewOrder fixes match precedence when a transcript mentions several views
var viewOrder = []string{ViewDashboard, ViewCropAdvisory, ViewMarketWeather, ViewGovConnect}

var navPhrases = map[string]map[string][]string{
	ViewDashboard: {
		"en": {"dashboard", "home", "main page"},
		"hi": {"डैशबोर्ड", "होम", "मुख्य पृष्ठ"},
		"bn": {"ড্যাশবোর্ড", "হোম", "প্রধান পাতা"},
		"te": {"డాష్బోర్డ్", "హోమ్", "ప్రధాన పేజీ"},
		"mr": {"डॅशबोर्ड", "होम", "मुख्य पृष्ठ"},
		"ta": {"டாஷ்போர்டு", "முகப்பு", "முதன்மை பக்கம்"},
		"gu": {"ડેશબોર્ડ", "હોમ", "મુખ્ય પૃષ્ઠ"},
		"kn": {"ಡ್ಯಾಶ್‌ಬೋರ್ಡ್", "ಹೋಮ್", "ಮುಖ್ಯ ಪುಟ"},
	},
	ViewCropAdvisory: {
		"en": {"crop advisory", "pest control", "crop help"},
		"hi": {"फसल सलाहकार", "कीट नियंत्रण", "फसल सहायता"},
		"bn": {"শস্য উপদেষ্টা", "কীটপতঙ্গ নিয়ন্ত্রণ", "শস্য সহায়তা"},
		"te": {"పంట సలహా", "పురుగుల నియంత్రణ", "పంట సహాయం"},
		"mr": {"पीक सल्लागार", "कीड नियंत्रण", "पीक मदत"},
		"ta": {"பயிர் ஆலோசனை", "பூச்சி கட்டுப்பாடு", "பயிர் உதவி"},
		"gu": {"પાક સલાહકાર", "જંતુ નિયંત્રણ", "પાક મદદ"},
		"kn": {"ಬೆಳೆ ಸಲಹೆಗಾರ", "ಕೀಟ ನಿಯಂತ್ರಣ", "ಬೆಳೆ ಸಹಾಯ"},
	},
	ViewMarketWeather: {
		"en": {"market and weather", "prices", "weather forecast", "news"},
		"hi": {"बाजार और मौसम", "कीमतें", "मौसम पूर्वानुमान", "समाचार"},
		"bn": {"বাজার এবং আবহাওয়া", "মূল্য", "আবহাওয়ার পূর্বাভাস"},
		"te": {"మార్కెట్ మరియు వాతావరణం", "ధరలు", "వాతావరణ సూచన"},
		"mr": {"बाजार आणि हवामान", "किंमती", "हवामान अंदाज"},
		"ta": {"சந்தை மற்றும் வானிலை", "விலைகள்", "வானிலை முன்னறிவிப்பு"},
		"gu": {"બજાર અને હવામાન", "કિંમતો", "હવામાનની આગાહી"},
		"kn": {"ಮಾರುಕಟ್ಟೆ ಮತ್ತು ಹವಾಮಾನ", "ಬೆಲೆಗಳು", "ಹವಾಮಾನ ಮುನ್ಸೂಚನೆ"},
	},
	ViewGovConnect: {
		"en": {"government connect", "government schemes", "complaint"},
		"hi": {"सरकारी कनेक्ट", "सरकारी योजनाएं", "शिकायत"},
		"bn": {"সরকারি সংযোগ", "সরকারি স্কিম", "অভিযোগ"},
		"te": {"ప్రభుత్వ కనెక్ట్", "ప్రభుత్వ పథకాలు", "ఫిర్యాదు"},
		"mr": {"सरकारी कनेक्ट", "सरकारी योजना", "तक्रार"},
		"ta": {"அரசு இணைப்பு", "அரசு திட்டங்கள்", "புகார்"},
		"gu": {"સરકારી કનેક્ટ", "સરકારી યોજનાઓ", "ફરિયાદ"},
		"kn": {"ಸರ್ಕಾರಿ ಸಂಪರ್ಕ", "ಸರ್ಕಾರಿ ಯೋಜನೆಗಳು", "ದೂರು"},
	},
}

var sendPhrases = map[string][]string{
	"en": {"send message", "submit", "send"},
	"hi": {"संदेश भेजो", "भेजो", "सबमिट करें"},
	"bn": {"বার্তা পাঠান", "জমা দিন", "পাঠান"},
	"te": {"సందేశం పంపు", "పంపు", "సమర్పించు"},
	"mr": {"संदेश पाठवा", "पाठवा", "सादर करा"},
	"ta": {"செய்தி அனுப்பு", "அனுப்பு", "சமர்ப்பி"},
	"gu": {"સંદેશ મોકલો", "મોકલો", "સબમિટ કરો"},
	"kn": {"ಸಂದೇಶ ಕಳುಹಿಸಿ", "ಕಳುಹಿಸಿ", "ಸಲ್ಲಿಸು"},
}

var changeLanguagePrefixes = map[string]string{
	"en": "change language to",
	"hi": "भाषा बदलकर",
	"bn": "ভাষা পরিবর্তন করে",
	"te": "భాషను మార్చు",
	"mr": "भाषा बदला",
	"ta": "மொழியை மாற்று",
	"gu": "ભાષા બદલો",
	"kn": "ಭಾಷೆಯನ್ನು ಬದಲಾಯಿಸಿ",
}

// MatchCommand matches a finalized transcript against the voice command
// tables for the given language, falling back to English. Language changes
// are checked first, then the send action, then navigation targets.
func MatchCommand(transcript, languageCode string) (Command, bool) {
	spoken := strings.ToLower(strings.TrimSpace(transcript))
	if spoken == "" {
		return Command{}, false
	}

	for _, code := range candidateCodes(languageCode) {
		if prefix, ok := changeLanguagePrefixes[code]; ok {
			if rest, found := strings.CutPrefix(spoken, strings.ToLower(prefix)); found {
				return Command{
					Kind:   CommandChangeLanguage,
					Target: strings.TrimSpace(rest),
				}, true
			}
		}
		for _, phrase := range sendPhrases[code] {
			if strings.Contains(spoken, strings.ToLower(phrase)) {
				return Command{Kind: CommandSend}, true
			}
		}
		for _, view := range viewOrder {
			for _, phrase := range navPhrases[view][code] {
				if strings.Contains(spoken, strings.ToLower(phrase)) {
					return Command{Kind: CommandNavigate, Target: view}, true
				}
			}
		}
	}
	return Command{}, false
}

func candidateCodes(languageCode string) []string {
	if languageCode == "" || languageCode == "en" {
		return []string{"en"}
	}
	return []string{languageCode, "en"}
}

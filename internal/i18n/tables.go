package i18n

import "github.com/kisanmitra/kisanmitra/internal/domain"

var english = Strings{
	AppTitle: "Kisan Mitra AI",
	Chat: ChatStrings{
		Thinking:         "Kisan Mitra is thinking...",
		Sources:          "Sources:",
		InputPlaceholder: "Type your question here...",
		StartPrompt:      "Start the conversation by asking a question below, or try one of these examples.",
		Error:            "Sorry, I encountered an error. Please try again.",
		MicError:         "Microphone access denied. Please enable it in browser settings.",
		MicErrorNetwork:  "Network error: Check connection.",
		UploadImage:      "Upload Image",
	},
	News: NewsStrings{
		Title:       "Market Prices & Weather",
		Description: "Live updates on mandi prices, weather forecasts, and agricultural news.",
		Loading:     "Fetching latest news from the internet...",
		Refresh:     "Refresh Feed",
		ReadMore:    "Read Full News",
		Categories: map[string]string{
			"market":  "Market Price",
			"weather": "Weather Alert",
			"general": "Agri News",
		},
		Error: "Unable to fetch news at the moment. Please check your connection.",
	},
	Gov: GovStrings{
		Title:              "Submit a Query",
		Subtitle:           "Raise complaints, request subsidies, or ask for scheme information.",
		FormName:           "Full Name",
		FormLocation:       "Village/District",
		FormType:           "Query Type",
		FormMessage:        "Message",
		FormSubmit:         "Submit Query",
		Success:            "Success",
		SuccessMsg:         "Your query has been submitted. A government official will respond shortly.",
		QueryTypes:         []string{"Complaint", "Subsidy Request", "Scheme Information", "Other"},
		Advisories:         "Government Advisories",
		AdvisoriesSubtitle: "Latest updates and alerts from agricultural authorities.",
		DemoAdvisories: []domain.Advisory{
			{Title: "New Subsidy on Drip Irrigation", Date: "2 days ago", Content: "75% subsidy available on new installations. Apply now."},
			{Title: "Pest Alert: Locust Swarm", Date: "1 week ago", Content: "Locust swarms reported in western districts. Take preventive measures."},
			{Title: "Weather Alert: Heavy Rain", Date: "3 hours ago", Content: "Heavy rainfall predicted. Protect crops and livestock."},
		},
	},
	CropAdvisory: AdvisoryStrings{
		Title:       "Crop Advisory",
		Description: "Ask about pests, diseases, farming techniques, or upload an image for identification.",
		Prompts: []string{
			"Identify this pest from an image.",
			"What are the most common insects that attack cotton crops?",
			"Suggest some organic pest control methods for my vegetable garden.",
			"How do I identify and treat leaf curl virus on my chili plants?",
		},
	},
}

var hindi = Strings{
	AppTitle: "किसान मित्र एआई",
	Chat: ChatStrings{
		Thinking:         "किसान मित्र सोच रहा है...",
		Sources:          "स्रोत:",
		InputPlaceholder: "अपना प्रश्न यहाँ टाइप करें...",
		StartPrompt:      "नीचे प्रश्न पूछकर बातचीत शुरू करें, या इन उदाहरणों में से एक आज़माएं।",
		Error:            "क्षमा करें, कोई त्रुटि हुई। कृपया पुन: प्रयास करें।",
		MicError:         "माइक्रोफ़ोन तक पहुंच अस्वीकृत।",
		MicErrorNetwork:  "नेटवर्क त्रुटि: कनेक्शन जांचें।",
		UploadImage:      "तस्वीर अपलोड करें",
	},
	News: NewsStrings{
		Title:       "बाजार और मौसम",
		Description: "मंडी भाव, मौसम पूर्वानुमान और कृषि समाचार पर लाइव अपडेट।",
		Loading:     "इंटरनेट से नवीनतम समाचार ला रहा है...",
		Refresh:     "रीफ्रेश करें",
		ReadMore:    "पूरा पढ़ें",
		Categories: map[string]string{
			"market":  "मंडी भाव",
			"weather": "मौसम अलर्ट",
			"general": "कृषि समाचार",
		},
		Error: "इस समय समाचार लाने में असमर्थ। कृपया अपना कनेक्शन जांचें।",
	},
	Gov: GovStrings{
		Title:              "प्रश्न भेजें",
		Subtitle:           "शिकायतें उठाएं, सब्सिडी का अनुरोध करें, या योजना की जानकारी मांगें।",
		FormName:           "पूरा नाम",
		FormLocation:       "गाँव/जिला",
		FormType:           "प्रश्न का प्रकार",
		FormMessage:        "संदेश",
		FormSubmit:         "प्रश्न जमा करें",
		Success:            "सफल",
		SuccessMsg:         "आपका प्रश्न जमा कर दिया गया है। सरकारी अधिकारी जल्द ही जवाब देंगे।",
		QueryTypes:         []string{"शिकायत", "सब्सिडी अनुरोध", "योजना जानकारी", "अन्य"},
		Advisories:         "सरकारी सलाह",
		AdvisoriesSubtitle: "कृषि अधिकारियों से नवीनतम अपडेट और अलर्ट।",
		DemoAdvisories: []domain.Advisory{
			{Title: "ड्रिप सिंचाई पर नई सब्सिडी", Date: "2 दिन पहले", Content: "नई स्थापनाओं पर 75% सब्सिडी उपलब्ध है। अभी आवेदन करें।"},
			{Title: "कीट चेतावनी: टिड्डी दल", Date: "1 सप्ताह पहले", Content: "पश्चिमी जिलों में टिड्डी दल की सूचना मिली है। निवारक उपाय करें।"},
			{Title: "मौसम चेतावनी: भारी बारिश", Date: "3 घंटे पहले", Content: "भारी बारिश की संभावना है। फसलों और पशुओं की सुरक्षा करें।"},
		},
	},
	CropAdvisory: AdvisoryStrings{
		Title:       "फसल सलाह",
		Description: "कीटों, रोगों, खेती की तकनीकों के बारे में पूछें या पहचान के लिए एक छवि अपलोड करें।",
		Prompts: []string{
			"छवि से इस कीट की पहचान करें।",
			"कपास की फसलों पर हमला करने वाले सबसे आम कीड़े कौन से हैं?",
			"मेरी सब्जी की बगीचे के लिए कुछ जैविक कीट नियंत्रण विधियों का सुझाव दें।",
			"मैं अपने मिर्च के पौधों पर पत्ती मरोड़ वायरस की पहचान और उपचार कैसे करूँ?",
		},
	},
}

// partial builds a language table that inherits English for everything the
// original app never fully localized
func partial(appTitle string, news NewsStrings) Strings {
	s := english
	s.AppTitle = appTitle
	s.News = news
	return s
}

var tables = map[string]Strings{
	"en": english,
	"hi": hindi,
	"bn": partial("কিষাণ মিত্র এআই", NewsStrings{
		Title:       "বাজার দর ও আবহাওয়া",
		Description: "বাজার দর এবং আবহাওয়ার পূর্বাভাস পান।",
		Loading:     "খবর লোড হচ্ছে...",
		Refresh:     "রিফ্রেশ",
		ReadMore:    "পুরো পড়ুন",
		Categories:  map[string]string{"market": "বাজার দর", "weather": "আবহাওয়া", "general": "খবর"},
		Error:       "ত্রুটি হয়েছে।",
	}),
	"te": partial("కిసాన్ మిత్ర AI", NewsStrings{
		Title:       "మార్కెట్ & వాతావరణం",
		Description: "మార్కెట్ ధరలు మరియు వాతావరణ సూచనలు.",
		Loading:     "లోడ్ అవుతోంది...",
		Refresh:     "రీఫ్రెష్",
		ReadMore:    "పూర్తిగా చదవండి",
		Categories:  map[string]string{"market": "మార్కెట్ ధర", "weather": "వాతావరణం", "general": "వార్తలు"},
		Error:       "లోపం.",
	}),
	"mr": partial("किसान मित्र AI", NewsStrings{
		Title:       "बाजार आणि हवामान",
		Description: "बाजार भाव आणि हवामान अंदाज.",
		Loading:     "लोड करत आहे...",
		Refresh:     "रिफ्रेश",
		ReadMore:    "पूर्ण वाचा",
		Categories:  map[string]string{"market": "बाजार भाव", "weather": "हवामान", "general": "बातम्या"},
		Error:       "त्रुटी.",
	}),
	"ta": partial("கிசான் மித்ரா AI", NewsStrings{
		Title:       "சந்தை & வானிலை",
		Description: "சந்தை விலைகள் மற்றும் வானிலை.",
		Loading:     "ஏற்றுகிறது...",
		Refresh:     "புதுப்பி",
		ReadMore:    "முழுவதும் படி",
		Categories:  map[string]string{"market": "சந்தை விலை", "weather": "வானிலை", "general": "செய்திகள்"},
		Error:       "பிழை.",
	}),
	"gu": partial("કિસાન મિત્ર AI", NewsStrings{
		Title:       "બજાર અને હવામાન",
		Description: "બજાર ભાવ અને હવામાન આગાહી.",
		Loading:     "લોડ થઈ રહ્યું છે...",
		Refresh:     "રીફ્રેશ",
		ReadMore:    "વધુ વાંચો",
		Categories:  map[string]string{"market": "બજાર ભાવ", "weather": "હવામાન", "general": "સમાચાર"},
		Error:       "ભૂલ.",
	}),
	"kn": partial("ಕಿಸಾನ್ ಮಿತ್ರ AI", NewsStrings{
		Title:       "ಮಾರುಕಟ್ಟೆ ಮತ್ತು ಹವಾಮಾನ",
		Description: "ಬೆಲೆಗಳು ಮತ್ತು ಹವಾಮಾನ ಮುನ್ಸೂಚನೆ.",
		Loading:     "ಲೋಡ್ ಆಗುತ್ತಿದೆ...",
		Refresh:     "ರಿಫ್ರೆಶ್",
		ReadMore:    "ಮತ್ತಷ್ಟು ಓದಿ",
		Categories:  map[string]string{"market": "ಮಾರುಕಟ್ಟೆ ಬೆಲೆ", "weather": "ಹವಾಮಾನ", "general": "ಸುದ್ದಿ"},
		Error:       "ದೋಷ.",
	}),
	"ml": partial("കിസാൻ മിത്ര AI", NewsStrings{
		Title:       "വിപണിയും കാലാവസ്ഥയും",
		Description: "വിപണി വിലകളും കാലാവസ്ഥയും.",
		Loading:     "ലോഡ് ചെയ്യുന്നു...",
		Refresh:     "പുതുക്കുക",
		ReadMore:    "കൂടുതൽ വായിക്കുക",
		Categories:  map[string]string{"market": "വിപണി വില", "weather": "കാലാവസ്ഥ", "general": "വാർത്ത"},
		Error:       "പിശക്.",
	}),
	"pa": partial("ਕਿਸਾਨ ਮਿੱਤਰ AI", NewsStrings{
		Title:       "ਮੰਡੀ ਅਤੇ ਮੌਸਮ",
		Description: "ਮੰਡੀ ਦੇ ਭਾਅ ਅਤੇ ਮੌਸਮ।",
		Loading:     "ਲੋਡ ਹੋ ਰਿਹਾ ਹੈ...",
		Refresh:     "ਰੀਫ੍ਰੈਸ਼",
		ReadMore:    "ਹੋਰ ਪੜ੍ਹੋ",
		Categories:  map[string]string{"market": "ਮੰਡੀ ਭਾਅ", "weather": "ਮੌਸਮ", "general": "ਖਬਰਾਂ"},
		Error:       "ਗਲਤੀ.",
	}),
	"or": partial("କିଷାନ ମିତ୍ର AI", NewsStrings{
		Title:       "ବଜାର ଏବଂ ପାଣିପାଗ",
		Description: "ବଜାର ଦର ଏବଂ ପାଣିପାଗ।",
		Loading:     "ଲୋଡ୍ ହେଉଛି...",
		Refresh:     "ରିଫ୍ରେଶ୍",
		ReadMore:    "ଅଧିକ ପଢନ୍ତୁ",
		Categories:  map[string]string{"market": "ବଜାର ଦର", "weather": "ପାଣିପାଗ", "general": "ଖବର"},
		Error:       "ତ୍ରୁଟି.",
	}),
}

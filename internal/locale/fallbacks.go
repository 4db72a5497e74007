package locale

import (
	"fmt"

	"agrivoice-go/internal/types"
)

// fallbackTranscripts are the deterministic transcripts returned when the
// speech engine is unavailable or cannot recognize the audio. Field-recorded
// voice is unreliable, so a generic usable listing beats an error screen.
var fallbackTranscripts = map[types.LanguageCode]string{
	types.LangEnglish:   "I have 10 kg of fresh tomatoes, selling at ₹40 per kg",
	types.LangHindi:     "मेरे पास 10 किलो ताजे टमाटर हैं, ₹40 प्रति किलो में बेच रहा हूं",
	types.LangTamil:     "என்னிடம் 10 கிலோ புதிய தக்காளிகள் உள்ளன, கிலோவுக்கு ₹40 விற்கிறேன்",
	types.LangTelugu:    "నా వద్ద 10 కిలోల తాజా టమాటాలు ఉన్నాయి, కిలోకి ₹40 చొప్పున అమ్ముతున్నాను",
	types.LangKannada:   "ನನ್ನ ಬಳಿ 10 ಕಿಲೋ ತಾಜಾ ಟೊಮೇಟೊಗಳಿವೆ, ಕಿಲೋಗೆ ₹40 ರಂತೆ ಮಾರಾಟ ಮಾಡುತ್ತಿದ್ದೇನೆ",
	types.LangMalayalam: "എന്റെ കൈയിൽ 10 കിലോ പുതിയ തക്കാളികൾ ഉണ്ട്, കിലോയ്ക്ക് ₹40 നിരക്കിൽ വിൽക്കുന്നു",
	types.LangGujarati:  "મારી પાસે 10 કિલો તાજા ટામેટા છે, કિલો દીઠ ₹40 માં વેચું છું",
	types.LangMarathi:   "माझ्याकडे 10 किलो ताजे टोमॅटो आहेत, किलोला ₹40 दराने विकत आहे",
	types.LangBengali:   "আমার কাছে 10 কিলো তাজা টমেটো আছে, কিলো প্রতি ₹40 দরে বিক্রি করছি",
	types.LangOdia:      "ମୋ ପାଖରେ 10 କିଲୋ ତାଜା ଟମାଟୋ ଅଛି, କିଲୋ ପିଛା ₹40 ଦରରେ ବିକ୍ରି କରୁଛି",
	types.LangPunjabi:   "ਮੇਰੇ ਕੋਲ 10 ਕਿਲੋ ਤਾਜ਼ੇ ਟਮਾਟਰ ਹਨ, ਕਿਲੋ ਪ੍ਰਤੀ ₹40 ਵਿੱਚ ਵੇਚ ਰਿਹਾ ਹਾਂ",
}

// FallbackTranscript returns the canned transcript for lang.
func FallbackTranscript(lang types.LanguageCode) string {
	if t, ok := fallbackTranscripts[lang]; ok {
		return t
	}
	return fallbackTranscripts[types.LangEnglish]
}

var fallbackSuggestions = map[types.LanguageCode]types.Suggestions{
	types.LangEnglish: {
		Description: "Fresh produce available directly from the farmer.",
		PriceRange:  "As per current market rate",
		WhereToSell: "Local mandi or nearby town market",
		SellingTip:  "Highlight freshness and quality to attract buyers.",
	},
	types.LangHindi: {
		Description: "किसान से सीधे ताज़ा उपज उपलब्ध है।",
		PriceRange:  "वर्तमान बाज़ार दर के अनुसार",
		WhereToSell: "स्थानीय मंडी या नज़दीकी शहर का बाज़ार",
		SellingTip:  "खरीदारों को आकर्षित करने के लिए ताज़गी और गुणवत्ता पर ज़ोर दें।",
	},
	types.LangTamil: {
		Description: "விவசாயியிடமிருந்து நேரடியாக புதிய விளைபொருள் கிடைக்கிறது.",
		PriceRange:  "தற்போதைய சந்தை விலைப்படி",
		WhereToSell: "உள்ளூர் சந்தை அல்லது அருகிலுள்ள நகர சந்தை",
		SellingTip:  "வாங்குபவர்களை ஈர்க்க புத்துணர்வையும் தரத்தையும் முன்னிலைப்படுத்துங்கள்.",
	},
	types.LangTelugu: {
		Description: "రైతు నుండి నేరుగా తాజా ఉత్పత్తులు అందుబాటులో ఉన్నాయి.",
		PriceRange:  "ప్రస్తుత మార్కెట్ ధర ప్రకారం",
		WhereToSell: "స్థానిక మార్కెట్ లేదా సమీప పట్టణ మార్కెట్",
		SellingTip:  "కొనుగోలుదారులను ఆకర్షించడానికి తాజాదనం, నాణ్యతను తెలియజేయండి.",
	},
	types.LangKannada: {
		Description: "ರೈತರಿಂದ ನೇರವಾಗಿ ತಾಜಾ ಉತ್ಪನ್ನ ಲಭ್ಯವಿದೆ.",
		PriceRange:  "ಪ್ರಸ್ತುತ ಮಾರುಕಟ್ಟೆ ದರದ ಪ್ರಕಾರ",
		WhereToSell: "ಸ್ಥಳೀಯ ಮಂಡಿ ಅಥವಾ ಹತ್ತಿರದ ಪಟ್ಟಣದ ಮಾರುಕಟ್ಟೆ",
		SellingTip:  "ಖರೀದಿದಾರರನ್ನು ಸೆಳೆಯಲು ತಾಜಾತನ ಮತ್ತು ಗುಣಮಟ್ಟವನ್ನು ಒತ್ತಿಹೇಳಿ.",
	},
	types.LangMalayalam: {
		Description: "കർഷകനിൽ നിന്ന് നേരിട്ട് പുതിയ ഉൽപ്പന്നങ്ങൾ ലഭ്യമാണ്.",
		PriceRange:  "നിലവിലെ വിപണി നിരക്ക് അനുസരിച്ച്",
		WhereToSell: "പ്രാദേശിക ചന്ത അല്ലെങ്കിൽ അടുത്തുള്ള പട്ടണ വിപണി",
		SellingTip:  "വാങ്ങുന്നവരെ ആകർഷിക്കാൻ പുതുമയും ഗുണനിലവാരവും എടുത്തുകാണിക്കുക.",
	},
	types.LangGujarati: {
		Description: "ખેડૂત પાસેથી સીધી તાજી ઉપજ ઉપલબ્ધ છે.",
		PriceRange:  "હાલના બજાર ભાવ પ્રમાણે",
		WhereToSell: "સ્થાનિક મંડી અથવા નજીકના શહેરનું બજાર",
		SellingTip:  "ખરીદદારોને આકર્ષવા તાજગી અને ગુણવત્તા પર ભાર મૂકો.",
	},
	types.LangMarathi: {
		Description: "शेतकऱ्याकडून थेट ताजा माल उपलब्ध आहे.",
		PriceRange:  "सध्याच्या बाजारभावानुसार",
		WhereToSell: "स्थानिक मंडई किंवा जवळच्या शहरातील बाजार",
		SellingTip:  "खरेदीदारांना आकर्षित करण्यासाठी ताजेपणा आणि दर्जा यावर भर द्या.",
	},
	types.LangBengali: {
		Description: "কৃষকের কাছ থেকে সরাসরি তাজা পণ্য পাওয়া যাচ্ছে।",
		PriceRange:  "বর্তমান বাজারদর অনুযায়ী",
		WhereToSell: "স্থানীয় হাট বা কাছের শহরের বাজার",
		SellingTip:  "ক্রেতাদের আকৃষ্ট করতে তাজা ও মানসম্পন্ন দিকটি তুলে ধরুন।",
	},
	types.LangOdia: {
		Description: "ଚାଷୀଙ୍କ ଠାରୁ ସିଧାସଳଖ ତାଜା ଉତ୍ପାଦ ଉପଲବ୍ଧ।",
		PriceRange:  "ବର୍ତ୍ତମାନର ବଜାର ଦର ଅନୁଯାୟୀ",
		WhereToSell: "ସ୍ଥାନୀୟ ମଣ୍ଡି କିମ୍ବା ନିକଟସ୍ଥ ସହରର ବଜାର",
		SellingTip:  "କ୍ରେତାଙ୍କୁ ଆକର୍ଷିତ କରିବା ପାଇଁ ତାଜାପଣ ଓ ଗୁଣବତ୍ତା ଦର୍ଶାନ୍ତୁ।",
	},
	types.LangPunjabi: {
		Description: "ਕਿਸਾਨ ਤੋਂ ਸਿੱਧੀ ਤਾਜ਼ੀ ਉਪਜ ਉਪਲਬਧ ਹੈ।",
		PriceRange:  "ਮੌਜੂਦਾ ਬਾਜ਼ਾਰ ਭਾਅ ਅਨੁਸਾਰ",
		WhereToSell: "ਸਥਾਨਕ ਮੰਡੀ ਜਾਂ ਨੇੜਲੇ ਸ਼ਹਿਰ ਦਾ ਬਾਜ਼ਾਰ",
		SellingTip:  "ਖਰੀਦਦਾਰਾਂ ਨੂੰ ਖਿੱਚਣ ਲਈ ਤਾਜ਼ਗੀ ਅਤੇ ਗੁਣਵੱਤਾ ਉੱਤੇ ਜ਼ੋਰ ਦਿਓ।",
	},
}

// FallbackSuggestions returns the template suggestion set for lang.
func FallbackSuggestions(lang types.LanguageCode) types.Suggestions {
	if s, ok := fallbackSuggestions[lang]; ok {
		return s
	}
	return fallbackSuggestions[types.LangEnglish]
}

// FallbackImprovements returns generic improvement advice for an unsold
// listing, phrased for the farmer's language via its display name.
func FallbackImprovements(lang types.LanguageCode) types.ImprovementSuggestions {
	name := DisplayName(lang)
	return types.ImprovementSuggestions{
		PricingSuggestions:  fmt.Sprintf("Consider a small price reduction to match the local mandi rate (%s buyers)", name),
		PresentationTips:    "Sort by size, remove damaged pieces and pack in clean crates",
		MarketingIdeas:      "Share a photo of the produce with your price on local trader groups",
		AlternativeChannels: "Try the nearby town market or an online agri-portal",
	}
}

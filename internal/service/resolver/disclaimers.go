package resolver

import (
	"github.com/velmora/health-assistant/backend/internal/analysis/intent"
	"github.com/velmora/health-assistant/backend/internal/analysis/language"
)

// consultationAdvice is the per-language, per-intent "consult a professional"
// block appended to resolved answers.
var consultationAdvice = map[language.Language]map[intent.Intent]string{
	language.English: {
		intent.Nutrition: "💡 **Professional Advice**: For personalized nutrition plans, consult a registered dietitian or nutritionist who can assess your specific health conditions, dietary restrictions, and goals.",
		intent.Medicine:  "⚠️ **Important**: Always consult your doctor or pharmacist before taking any medication. They can check for drug interactions, proper dosages, and ensure it's safe for your specific health condition.",
		intent.Emergency: "🚨 **EMERGENCY**: This requires immediate medical attention! Please contact emergency services (911/108) or visit the nearest emergency room right away. Do not delay seeking professional help.",
		intent.General:   "🩺 **Remember**: This is educational information only. For accurate diagnosis and treatment, please consult with a qualified healthcare professional who can examine you properly.",
	},
	language.Hindi: {
		intent.Nutrition: "💡 **पेशेवर सलाह**: व्यक्तिगत पोषण योजना के लिए किसी योग्य पोषण विशेषज्ञ से मिलें जो आपकी स्वास्थ्य स्थिति और आवश्यकताओं का सही आकलन कर सके।",
		intent.Medicine:  "⚠️ **महत्वपूर्ण**: कोई भी दवा लेने से पहले हमेशा डॉक्टर या फार्मासिस्ट से सलाह लें। वे दवाओं के नुकसान, सही खुराक और आपकी स्थिति के लिए सुरक्षा की जांच कर सकते हैं।",
		intent.Emergency: "🚨 **आपातकाल**: इसके लिए तत्काल चिकित्सा सहायता चाहिए! कृपया आपातकालीन सेवाओं (108) से संपर्क करें या तुरंत नजदीकी अस्पताल जाएं।",
		intent.General:   "🩺 **याद रखें**: यह केवल शैक्षिक जानकारी है। सटीक निदान और इलाज के लिए किसी योग्य चिकित्सक से मिलें जो आपकी सही जांच कर सके।",
	},
	language.Tamil: {
		intent.Nutrition: "💡 **நிபுணர் ஆலோசனை**: தனிப்பட்ட ஊட்டச்சத்து திட்டத்திற்கு தகுதியான ஊட்டச்சத்து நிபுணரை அணுகவும், அவர்கள் உங்கள் குறிப்பிட்ட சுகாதார நிலைமைகளை மதிப்பீடு செய்து உதவுவார்கள்.",
		intent.Medicine:  "⚠️ **முக்கியம்**: எந்த மருந்தையும் எடுத்துக்கொள்ளும் முன் எப்போதும் மருத்துவர் அல்லது மருந்தாளரை அணுகவும். அவர்கள் மருந்து தொடர்புகள், சரியான அளவு மற்றும் பாதுகாப்பை சரிபார்க்க முடியும்.",
		intent.Emergency: "🚨 **அவசரநிலை**: இதற்கு உடனடி மருத்துவ கவனிப்பு தேவை! அவசர சேவைகளை (108) தொடர்பு கொள்ளுங்கள் அல்லது உடனடியாக அருகிலுள்ள மருத்துவமனைக்கு செல்லுங்கள்.",
		intent.General:   "🩺 **நினைவில் கொள்ளுங்கள்**: இது கல்வி தகவல் மட்டுமே. துல்லியமான நோய் கண்டறிதல் மற்றும் சிகிச்சைக்கு தகுதியான சுகாதார நிபுணரை அணுகவும்.",
	},
}

// fallbackMessages is the fixed apology text per language when the
// generation backend cannot produce a response.
var fallbackMessages = map[language.Language]string{
	language.English: "I understand you have a health question. While I'd like to help, I recommend consulting with a qualified healthcare professional who can provide personalized advice based on your specific situation.",
	language.Hindi:   "मैं समझता हूं कि आपका एक स्वास्थ्य प्रश्न है। जबकि मैं मदद करना चाहूंगा, मैं एक योग्य स्वास्थ्य पेशेवर से सलाह लेने की सिफारिश करता हूं।",
	language.Tamil:   "உங்களுக்கு ஒரு சுகாதார கேள்வி இருப்பதை நான் புரிந்துகொள்கிறேன். நான் உதவ விரும்பினாலும், உங்கள் குறிப்பிட்ட நிலைமையின் அடிப்படையில் தனிப்பட்ட ஆலோசனை வழங்கக்கூடிய தகுதியான சுகாதார நிபுணரை அணுகுமாறு பரிந்துரைக்கிறேன்.",
}

var languageInstructions = map[language.Language]string{
	language.English: "Respond in English only. Use empathetic, caring tone with practical advice.",
	language.Hindi:   "केवल हिंदी में जवाब दें। सहानुभूति और देखभाल के साथ व्यावहारिक सलाह दें।",
	language.Tamil:   "தமிழில் மட்டுமே பதிலளிக்கவும். அனுதாபத்துடன் மற்றும் கவனிப்புடன் நடைமுறை ஆலோசனைகளை வழங்கவும்.",
}

var intentInstructions = map[intent.Intent]string{
	intent.Emergency: "This is an emergency medical question. Provide immediate actionable advice while strongly emphasizing the need for emergency medical care.",
	intent.Medicine:  "This is about medication. Provide educational information but strongly emphasize consulting healthcare professionals for medication advice.",
	intent.Nutrition: "This is about nutrition and diet. Provide helpful dietary information while recommending professional nutritionist consultation.",
	intent.General:   "This is a general health question. Provide educational information while emphasizing professional medical consultation.",
}

func disclaimerFor(lang language.Language, it intent.Intent) string {
	byIntent, ok := consultationAdvice[lang]
	if !ok {
		byIntent = consultationAdvice[language.English]
	}
	if msg, ok := byIntent[it]; ok {
		return msg
	}
	return byIntent[intent.General]
}

func fallbackFor(lang language.Language) string {
	if msg, ok := fallbackMessages[lang]; ok {
		return msg
	}
	return fallbackMessages[language.English]
}

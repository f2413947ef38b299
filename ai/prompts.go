package ai

// prompts.go collects the provider prompts and fallback strings in one place
// so they can be tweaked without touching the gateway or handler code.

const (
	// CareAssistantPrompt frames the generative provider as a companion for
	// seniors: short, encouraging replies, and a nudge toward the doctor when
	// serious symptoms come up.
	CareAssistantPrompt = "You are CareAI, a compassionate medical assistant for seniors. " +
		"Keep responses short, encouraging, and easy to understand. " +
		"If the user mentions serious symptoms, advise them to call a doctor."

	// FallbackReply is returned to the patient whenever the generative
	// provider is unreachable. The chat contract never surfaces provider
	// failures to the caller.
	FallbackReply = "I'm having trouble connecting to the network right now, but I'm here for you."

	// ClinicalScribePrompt asks for a doctor-facing summary of patient chat
	// logs. The logs themselves are appended by the caller.
	ClinicalScribePrompt = "You are an expert Medical Scribe. Summarize the following patient chat logs into a " +
		"concise clinical note using standard medical terminology (SOAP format if possible). " +
		"Highlight any symptoms, pain points, or mental health indicators."

	// SentimentPrompt constrains the classifier to a bare three-way label.
	SentimentPrompt = "Classify the sentiment of the user's message. " +
		"Answer with exactly one word: positive, negative, or neutral."
)

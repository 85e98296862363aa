package server

// modelCatalog lists the selectable models per provider. The catalog only
// populates the UI dropdowns; the server forwards whatever model id the
// client sends and lets the vendor validate it.
var modelCatalog = map[string][]string{
	"openai": {
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-3.5-turbo",
		"gpt-4-turbo",
	},
	"anthropic": {
		"claude-opus-4-1-20250805",
		"claude-opus-4-20250514",
		"claude-sonnet-4-20250514",
		"claude-3-7-sonnet-20250219",
		"claude-3-5-haiku-20241022",
	},
	"google": {
		"gemini-2.5-flash",
		"gemini-2.5-pro",
		"gemini-1.5-pro",
		"gemini-1.5-flash",
		"gemini-1.5-flash-8b",
	},
	"groq": {
		"llama-3.1-70b-versatile",
		"llama-3.1-8b-instant",
		"mixtral-8x7b-32768",
		"gemma-7b-it",
	},
}

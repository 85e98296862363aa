package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Credential key names consumed by the provider adapters. The names match
// the environment variables of the original deployment and double as lookup
// keys inside the secrets file's api_keys namespace.
const (
	KeyOpenAI      = "OPENAI_API_KEY"
	KeyOpenAIOrg   = "OPENAI_ORG_ID"
	KeyAnthropic   = "ANTHROPIC_API_KEY"
	KeyGoogle      = "GOOGLE_API_KEY"
	KeyGroq        = "GROQ_API_KEY"
	KeyHuggingFace = "HUGGINGFACE_TOKEN" // report-only, no adapter consumes it
	KeyWandB       = "WANDB_API_KEY"     // report-only, no adapter consumes it
)

// secretsNamespace is the top-level key under which credentials live in the
// secrets file, e.g.:
//
//	api_keys:
//	  OPENAI_API_KEY: sk-...
const secretsNamespace = "api_keys"

// Resolver looks up credentials from a viper-backed secrets store with an
// environment-variable fallback. The zero value (or a Resolver built without
// a secrets file) resolves from the environment only.
type Resolver struct {
	secrets *viper.Viper
}

// NewResolver returns a Resolver without a secrets store; lookups fall
// through to the process environment.
func NewResolver() *Resolver {
	return &Resolver{}
}

// NewResolverWithSecrets loads the secrets file at path (any format viper
// understands: YAML, TOML, JSON) and returns a Resolver layered on top of the
// environment. A missing file is not an error; the resolver silently
// degrades to environment-only, mirroring the optional nature of the store.
// A present but unparsable file is reported as an error.
func NewResolverWithSecrets(path string) (*Resolver, error) {
	if path == "" {
		return NewResolver(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewResolver(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading secrets file %s: %w", path, err)
	}
	return &Resolver{secrets: v}, nil
}

// LoadEnvFile loads environment variables from a dotenv file. Existing
// variables are not overridden, matching godotenv's default behavior. A
// missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Resolve returns the credential stored under key. Resolution order:
// secrets store (api_keys namespace), then process environment. The second
// return value reports whether a non-empty value was found. Resolve has no
// side effects and is idempotent for an unchanged environment.
func (r *Resolver) Resolve(key string) (string, bool) {
	if r != nil && r.secrets != nil {
		if value := r.secrets.GetString(secretsNamespace + "." + key); value != "" {
			return value, true
		}
	}
	if value := os.Getenv(key); value != "" {
		return value, true
	}
	return "", false
}

// Status reports, per external service, whether a credential is currently
// resolvable. It covers the four chat providers plus the report-only
// HuggingFace and Weights & Biases keys. Values are booleans only; the
// credentials themselves never leave the resolver.
func (r *Resolver) Status() map[string]bool {
	configured := func(key string) bool {
		_, ok := r.Resolve(key)
		return ok
	}
	return map[string]bool{
		"openai":      configured(KeyOpenAI),
		"anthropic":   configured(KeyAnthropic),
		"google":      configured(KeyGoogle),
		"groq":        configured(KeyGroq),
		"huggingface": configured(KeyHuggingFace),
		"wandb":       configured(KeyWandB),
	}
}

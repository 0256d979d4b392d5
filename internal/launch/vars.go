// Package launch builds the environment for spawning the Claude CLI
// under a profile and resolves which command-line tokens name a profile
// versus belong to the launched tool.
package launch

// Environment variables recognized by the launched tool.
const (
	// EnvConfigDir points the tool at a profile's isolated state
	// directory.
	EnvConfigDir = "CLAUDE_CONFIG_DIR"

	EnvAPIKey        = "ANTHROPIC_API_KEY"
	EnvAuthToken     = "ANTHROPIC_AUTH_TOKEN"
	EnvUseBedrock    = "CLAUDE_CODE_USE_BEDROCK"
	EnvUseVertex     = "CLAUDE_CODE_USE_VERTEX"
	EnvUseFoundry    = "CLAUDE_CODE_USE_FOUNDRY"
	EnvFoundryAPIKey = "ANTHROPIC_FOUNDRY_API_KEY"
)

// Credential-bearing variables a profile's env overrides are inspected
// for when deriving auth status.
const (
	EnvAWSProfile        = "AWS_PROFILE"
	EnvAWSAccessKeyID    = "AWS_ACCESS_KEY_ID"
	EnvAWSBedrockToken   = "AWS_BEARER_TOKEN_BEDROCK"
	EnvVertexProjectID   = "ANTHROPIC_VERTEX_PROJECT_ID"
	EnvVertexRegion      = "CLOUD_ML_REGION"
	EnvGoogleCredentials = "GOOGLE_APPLICATION_CREDENTIALS"
)

// selectorVars is the fixed list of auth-mode-selector variables that
// every composed environment clears before re-setting the ones the
// profile actually needs. A parent shell may carry leftovers from a
// previously active profile; clearing first is the only way to rule out
// cross-profile contamination.
var selectorVars = []string{
	EnvAPIKey,
	EnvAuthToken,
	EnvUseBedrock,
	EnvUseVertex,
	EnvUseFoundry,
	EnvFoundryAPIKey,
}

// Vars maps environment variable names to values. A nil value marks a
// variable that must be absent from the final merged environment, not
// merely empty.
type Vars map[string]*string

// Set records key with the given value.
func (v Vars) Set(key, value string) {
	v[key] = &value
}

// Unset records key for removal from the merged environment.
func (v Vars) Unset(key string) {
	v[key] = nil
}

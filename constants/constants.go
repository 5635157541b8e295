package constants

import "os"

// GetTemplatePath returns an override for the embedded viewer template,
// or "" to use the built-in copy.
func GetTemplatePath() string {
	return os.Getenv("TEMPLATE_PATH")
}

// GetRegistryEndpoint returns the piano-registry DynamoDB endpoint.
// Registry enrichment is disabled when it is unset.
func GetRegistryEndpoint() string {
	return os.Getenv("REGISTRY_ENDPOINT")
}

func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// WeightTolerance absorbs device noise when verifying that balance weight
// and friction agree with the down/up weights they derive from.
const WeightTolerance = 0.01

// MinKeySlots is the null sentinel slot plus at least one key.
const MinKeySlots = 2

// RegistryTable holds per-piano metadata keyed by piano name.
const RegistryTable = "kmd-piano-registry"

package mqtt

import (
	"fmt"
	"strings"
)

// expected: {prefix}/pet/{petId}/telemetry
func ParsePetID(topic, prefix string) (string, error) {
	parts := strings.Split(topic, "/")
	prefixParts := strings.Split(prefix, "/")
	if len(parts) != len(prefixParts)+3 {
		return "", fmt.Errorf("invalid topic: %s", topic)
	}
	for i, p := range prefixParts {
		if parts[i] != p {
			return "", fmt.Errorf("topic prefix mismatch: %s", topic)
		}
	}
	if parts[len(prefixParts)] != "pet" || parts[len(parts)-1] != "telemetry" {
		return "", fmt.Errorf("invalid topic pattern: %s", topic)
	}
	petID := parts[len(prefixParts)+1]
	if strings.TrimSpace(petID) == "" {
		return "", fmt.Errorf("empty pet id: %s", topic)
	}
	return petID, nil
}

package pricing

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"oakcraft/internal/features/catalog"
)

// EncodeState serializes a ConfigState into a URL-safe string so a
// configuration can be carried into a preview page or basket entry.
func EncodeState(state catalog.ConfigState) (string, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeState reverses EncodeState.
func DecodeState(encoded string) (catalog.ConfigState, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("malformed configuration state: %w", err)
	}
	var state catalog.ConfigState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("malformed configuration state: %w", err)
	}
	return state, nil
}

package widget

import (
	"encoding/json"
	"fmt"
)

// Decode parses untyped wire JSON into a Node and validates it against the
// schema. This is the trust boundary: trees built in-process through the
// typed API are valid by construction, network input is not.
func Decode(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to decode widget: %w", err)
	}
	if err := Validate(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// JSONSize returns the serialized byte size of the tree.
// Returns 0 if the node cannot be marshaled, which cannot happen for trees
// built from the typed API.
func JSONSize(n *Node) int {
	data, err := json.Marshal(n)
	if err != nil {
		return 0
	}
	return len(data)
}

package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/canopy/pkg/widget"
)

// Thresholds separating an acceptable tree from one that needs attention.
const (
	MaxProcessingTime = 100 * time.Millisecond
	MaxElements       = 100
)

// Performance holds the raw measurements of a profiling run.
type Performance struct {
	TotalTime         time.Duration `json:"totalProcessingTime"`
	SerializationTime time.Duration `json:"serializationTime"`
	JSONSize          int           `json:"jsonSize"`
	ElementCount      int           `json:"elementCount"`
	MaxDepth          int           `json:"maxDepth"`
}

// Metrics derives comparative figures from the raw measurements.
type Metrics struct {
	ElementsPerMS   float64 `json:"elementsPerMs"`
	BytesPerElement int     `json:"bytesPerElement"`
	Complexity      int     `json:"complexity"`
}

// Result is the outcome of profiling a single widget tree.
type Result struct {
	Performance Performance `json:"performance"`
	Metrics     Metrics     `json:"metrics"`
	Acceptable  bool        `json:"acceptable"`
	Warnings    []string    `json:"warnings"`
}

// Profile measures serialization cost and structural weight of a tree.
// A tree is acceptable when it serializes in under 100ms, stays below the
// hard size limit, and nests no deeper than the depth limit.
func Profile(n *widget.Node) (*Result, error) {
	start := time.Now()

	raw, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	serializeTime := time.Since(start)

	count, depth := measure(n, 0)
	total := time.Since(start)

	totalMS := float64(total) / float64(time.Millisecond)
	if totalMS <= 0 {
		totalMS = 0.001
	}
	perElement := 0
	if count > 0 {
		perElement = len(raw) / count
	}

	r := &Result{
		Performance: Performance{
			TotalTime:         total,
			SerializationTime: serializeTime,
			JSONSize:          len(raw),
			ElementCount:      count,
			MaxDepth:          depth,
		},
		Metrics: Metrics{
			ElementsPerMS:   float64(count) / totalMS,
			BytesPerElement: perElement,
			Complexity:      depth * count,
		},
		Acceptable: total < MaxProcessingTime &&
			len(raw) < widget.HardSizeLimit &&
			depth < widget.MaxDepth,
	}

	if total > MaxProcessingTime {
		r.Warnings = append(r.Warnings, "Processing time exceeds 100ms")
	}
	if len(raw) > widget.HardSizeLimit {
		r.Warnings = append(r.Warnings, "JSON size exceeds 100KB")
	}
	if depth > widget.MaxDepth {
		r.Warnings = append(r.Warnings, "Widget depth exceeds 10 levels")
	}
	if count > MaxElements {
		r.Warnings = append(r.Warnings, "Element count exceeds 100")
	}
	return r, nil
}

func measure(n *widget.Node, depth int) (count, maxDepth int) {
	if n == nil {
		return 0, depth
	}
	count = 1
	maxDepth = depth
	for i := range n.Children {
		c, d := measure(&n.Children[i], depth+1)
		count += c
		if d > maxDepth {
			maxDepth = d
		}
	}
	return count, maxDepth
}

package models

// SyntheticIDThreshold separates catalog product ids from AI-suggested ones.
// Catalog ids stay below it forever; ids at or above it belong to transient
// AI suggestions. Client code branches on this boundary, so it must not move.
const SyntheticIDThreshold = 100000

type ProductSource string

const (
	ProductSourceCatalog ProductSource = "catalog"
	ProductSourceAI      ProductSource = "ai"
)

// Product represents one medicine entry, either from the built-in catalog or
// synthesized by the AI search delegate.
type Product struct {
	ID                     int64         `json:"id"`
	Name                   string        `json:"name"`
	Description            string        `json:"description"`
	Image                  string        `json:"image"`
	Category               string        `json:"category,omitempty"`
	Composition            string        `json:"composition,omitempty"`
	Usage                  string        `json:"usage,omitempty"`
	SideEffects            string        `json:"sideEffects,omitempty"`
	Precautions            []string      `json:"precautions,omitempty"`
	IsPrescriptionRequired bool          `json:"isPrescriptionRequired"`
	Source                 ProductSource `json:"source,omitempty"`
}

// IsSynthetic reports whether the product is an AI suggestion rather than a
// catalog entry. The source tag and the id range must agree; the id range is
// the authoritative check.
func (p *Product) IsSynthetic() bool {
	return p.ID >= SyntheticIDThreshold
}

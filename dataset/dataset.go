package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stablematch/market"
)

var (
	// ErrMalformed is returned for unreadable YAML, unknown fields or an
	// empty input.
	ErrMalformed = errors.New("dataset: malformed document")

	// ErrNoMatching is returned by Document.Matching when the document
	// carries no matching block.
	ErrNoMatching = errors.New("dataset: document has no matching")
)

// Document is the YAML form of a market and, optionally, a matching.
type Document struct {
	Proposers   []string          `yaml:"proposers"`
	Receivers   []string          `yaml:"receivers"`
	Preferences Preferences       `yaml:"preferences"`
	Pairs       map[string]string `yaml:"matching,omitempty"`
}

// Preferences holds both profiles, keyed by agent identifier.
type Preferences struct {
	Proposers map[string][]string `yaml:"proposers"`
	Receivers map[string][]string `yaml:"receivers"`
}

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &doc, nil
}

// Load decodes the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Market validates the document and builds the market it describes.
// Validation errors are the market package's, wrapped.
func (d *Document) Market() (*market.Market, error) {
	m, err := market.New(d.Proposers, d.Receivers, d.Preferences.Proposers, d.Preferences.Receivers)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return m, nil
}

// Matching resolves the document's matching block against m.
func (d *Document) Matching(m *market.Market) (*market.Matching, error) {
	if len(d.Pairs) == 0 {
		return nil, ErrNoMatching
	}
	mt, err := m.MatchingFromIDs(d.Pairs)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return mt, nil
}

// FromMarket builds the document of m. When mt is non-nil it is stored as
// the matching block.
func FromMarket(m *market.Market, mt *market.Matching) (*Document, error) {
	doc := &Document{
		Proposers: m.Agents(market.Proposers),
		Receivers: m.Agents(market.Receivers),
		Preferences: Preferences{
			Proposers: m.Profile(market.Proposers),
			Receivers: m.Profile(market.Receivers),
		},
	}
	if mt != nil {
		pairs, err := m.MatchingIDs(mt)
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		doc.Pairs = pairs
	}

	return doc, nil
}

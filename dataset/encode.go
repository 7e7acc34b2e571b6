package dataset

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Encode writes doc to w. Lists use flow style and every mapping follows
// group order; keys missing from the group lists come last, sorted.
func Encode(w io.Writer, doc *Document) error {
	root, err := doc.node()
	if err != nil {
		return fmt.Errorf("dataset: encode: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(root); err != nil {
		return fmt.Errorf("dataset: encode: %w", err)
	}

	return enc.Close()
}

func (d *Document) node() (*yaml.Node, error) {
	prefs := mapping()
	for _, side := range []struct {
		key     string
		order   []string
		profile map[string][]string
	}{
		{"proposers", d.Proposers, d.Preferences.Proposers},
		{"receivers", d.Receivers, d.Preferences.Receivers},
	} {
		lists, err := listMap(side.order, side.profile)
		if err != nil {
			return nil, err
		}
		if err = appendPair(prefs, side.key, lists); err != nil {
			return nil, err
		}
	}

	root := mapping()
	for _, kv := range []struct {
		key string
		val any
	}{
		{"proposers", flowList(d.Proposers)},
		{"receivers", flowList(d.Receivers)},
		{"preferences", prefs},
	} {
		if err := appendPair(root, kv.key, kv.val); err != nil {
			return nil, err
		}
	}
	if len(d.Pairs) > 0 {
		pairs := mapping()
		pairs.Style = yaml.FlowStyle
		for _, k := range orderedKeys(d.Proposers, d.Pairs) {
			if err := appendPair(pairs, k, d.Pairs[k]); err != nil {
				return nil, err
			}
		}
		if err := appendPair(root, "matching", pairs); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

// appendPair encodes key and val and appends them to the mapping node m.
func appendPair(m *yaml.Node, key string, val any) error {
	var k yaml.Node
	if err := k.Encode(key); err != nil {
		return err
	}
	v, ok := val.(*yaml.Node)
	if !ok {
		v = new(yaml.Node)
		if err := v.Encode(val); err != nil {
			return err
		}
	}
	m.Content = append(m.Content, &k, v)

	return nil
}

// flowList renders ids as [a, b, c].
func flowList(ids []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, id := range ids {
		var item yaml.Node
		// Encoding a plain string cannot fail.
		_ = item.Encode(id)
		n.Content = append(n.Content, &item)
	}

	return n
}

// listMap renders a profile as one "id: [..]" line per agent in group order.
func listMap(order []string, profile map[string][]string) (*yaml.Node, error) {
	n := mapping()
	for _, k := range orderedKeys(order, profile) {
		if err := appendPair(n, k, flowList(profile[k])); err != nil {
			return nil, fmt.Errorf("preferences of %q: %w", k, err)
		}
	}

	return n, nil
}

// orderedKeys returns the keys of m that appear in order, in that order,
// followed by the remaining keys sorted.
func orderedKeys[V any](order []string, m map[string]V) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		if _, ok := m[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}

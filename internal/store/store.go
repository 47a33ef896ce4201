// Package store serializes and deserializes ast.Node trees as the
// recursive record { Kind: { Value, Children } } — Value is either a
// bare symbol string or, for a quantified formula, the nested record
// of its Quantifier — in either YAML or JSON.
package store

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"knowledgebase/internal/ast"
)

// Format selects the wire encoding. Load does not need to be told
// which one it's reading: YAML parses JSON as a subset.
type Format int

const (
	YAML Format = iota
	JSON
)

var kindNames = map[ast.Kind]string{
	ast.KindConstant:   "Constant",
	ast.KindVariable:   "Variable",
	ast.KindFunction:   "Function",
	ast.KindPredicate:  "Predicate",
	ast.KindFormula:    "Formula",
	ast.KindQuantifier: "Quantifier",
}

var kindsByName = func() map[string]ast.Kind {
	m := make(map[string]ast.Kind, len(kindNames))
	for k, v := range kindNames {
		m[v] = k
	}
	return m
}()

// Dump renders a list of facts in the given format.
func Dump(facts []*ast.Node, format Format) (string, error) {
	records := make([]any, len(facts))
	for i, f := range facts {
		records[i] = dumpNode(f)
	}

	switch format {
	case JSON:
		b, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		b, err := yaml.Marshal(records)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// Load parses a fact list previously produced by Dump, in either
// format — YAML parses JSON directly, so no format needs to be given.
func Load(data string) ([]*ast.Node, error) {
	var records []any
	if err := yaml.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	facts := make([]*ast.Node, len(records))
	for i, r := range records {
		n, err := loadNode(normalizeKeys(r))
		if err != nil {
			return nil, err
		}
		facts[i] = n
	}
	return facts, nil
}

func dumpNode(n *ast.Node) map[string]any {
	body := map[string]any{"Value": dumpValue(n)}
	if len(n.Children) > 0 {
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = dumpNode(c)
		}
		body["Children"] = children
	}
	return map[string]any{kindNames[n.Kind]: body}
}

func dumpValue(n *ast.Node) any {
	if n.Kind == ast.KindFormula && n.Quant != nil {
		return dumpNode(n.Quant)
	}
	return n.Head
}

func loadNode(raw map[string]any) (*ast.Node, error) {
	if len(raw) != 1 {
		return nil, fmt.Errorf("store: expected exactly one Kind key, got %d", len(raw))
	}
	var kindName string
	var bodyRaw any
	for k, v := range raw {
		kindName, bodyRaw = k, v
	}

	kind, ok := kindsByName[kindName]
	if !ok {
		return nil, fmt.Errorf("store: unknown Kind %q", kindName)
	}
	body, ok := normalizeKeys(bodyRaw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("store: Kind %q body is not a record", kindName)
	}

	children, err := loadChildren(body["Children"])
	if err != nil {
		return nil, err
	}

	head := ""
	var quant *ast.Node
	switch v := normalizeKeys(body["Value"]).(type) {
	case string:
		head = v
	case map[string]any:
		quant, err = loadNode(v)
		if err != nil {
			return nil, err
		}
	case nil:
		// absent Value, e.g. a malformed record; leave head empty
	default:
		return nil, fmt.Errorf("store: Value has unexpected shape %T", v)
	}

	return &ast.Node{Kind: kind, Head: head, Quant: quant, Children: children}, nil
}

func loadChildren(raw any) ([]*ast.Node, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("store: Children is not a list")
	}
	out := make([]*ast.Node, len(list))
	for i, c := range list {
		m, ok := normalizeKeys(c).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("store: child %d is not a record", i)
		}
		n, err := loadNode(m)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// normalizeKeys converts the map[interface{}]interface{} that yaml.v3
// produces for untyped maps into map[string]any, so loadNode never has
// to juggle two different map representations depending on whether
// the input came through YAML or JSON.
func normalizeKeys(v any) any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	default:
		return v
	}
}

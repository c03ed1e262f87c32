package itembank

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed banks/*.json
var embedded embed.FS

// Bank is an ordered collection of quiz items.
type Bank struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// ByArm returns the items tagged for the given arm, in bank order.
func (b *Bank) ByArm(arm Arm) []Item {
	var out []Item
	for _, it := range b.Items {
		if it.Arm == arm {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the item with the given id, or nil.
func (b *Bank) Find(id string) *Item {
	for i := range b.Items {
		if b.Items[i].ID == id {
			return &b.Items[i]
		}
	}
	return nil
}

// Default returns the embedded default bank: five calibration items and five
// trap items from the original study set.
func Default() (*Bank, error) {
	data, err := embedded.ReadFile("banks/default.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded bank: %w", err)
	}
	return parse(data)
}

// Load reads and validates a bank file from disk.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	b, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("bank %s: %w", path, err)
	}
	return b, nil
}

func parse(data []byte) (*Bank, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	seen := make(map[string]bool, len(b.Items))
	for _, it := range b.Items {
		if seen[it.ID] {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}
	return &b, nil
}

// validate checks the raw bank JSON against BankSchema.
func validate(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	// The compiler wants a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(BankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://itembank.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

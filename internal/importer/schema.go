package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RecordFile is the top-level structure of a portfolio import file. A file
// may also be a bare array of records.
type RecordFile struct {
	Records []RecordImport `json:"records" yaml:"records"`
}

// RecordImport is one project row in the import file. Numeric fields are
// pointers so that validation can tell a missing value from a zero.
type RecordImport struct {
	ID              string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name            string   `json:"name" yaml:"name"`
	Owner           string   `json:"owner" yaml:"owner"`
	Department      string   `json:"department" yaml:"department"`
	Region          string   `json:"region" yaml:"region"`
	Status          string   `json:"status" yaml:"status"`
	Phase           string   `json:"phase" yaml:"phase"`
	Progress        *float64 `json:"progress" yaml:"progress"`
	Efficiency      *float64 `json:"efficiency" yaml:"efficiency"`
	Risk            *float64 `json:"risk" yaml:"risk"`
	Reward          *float64 `json:"reward" yaml:"reward"`
	BudgetAllocated *float64 `json:"budget_allocated" yaml:"budget_allocated"`
	BudgetSpent     *float64 `json:"budget_spent" yaml:"budget_spent"`
	DelayDays       *int     `json:"delay_days,omitempty" yaml:"delay_days,omitempty"`
	StartDate       string   `json:"start_date" yaml:"start_date"`
}

// LoadRecordFile reads and parses an import file. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON.
func LoadRecordFile(path string) (*RecordFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return ParseJSON(data)
}

// ParseJSON parses a JSON import document, either {"records": [...]} or a
// bare array.
func ParseJSON(data []byte) (*RecordFile, error) {
	var file RecordFile
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &file.Records); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
		return &file, nil
	}
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &file, nil
}

// ParseYAML parses a YAML import document with the same shapes as ParseJSON.
func ParseYAML(data []byte) (*RecordFile, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	var file RecordFile
	if len(node.Content) == 0 {
		return &file, nil
	}
	root := node.Content[0]
	var err error
	if root.Kind == yaml.SequenceNode {
		err = root.Decode(&file.Records)
	} else {
		err = root.Decode(&file)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &file, nil
}

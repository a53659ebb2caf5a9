package types

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// ColumnConfig is one column of a JSON table definition.
type ColumnConfig struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// TableConfig is the JSON table definition accepted by the CLI and
// translated into a TableDescriptor. Omitted fields fall back to the Hive
// defaults the same way the descriptor constructor does.
type TableConfig struct {
	Database         string         `json:"database,omitempty"`
	Table            string         `json:"table" validate:"required"`
	Columns          []ColumnConfig `json:"columns" validate:"required,min=1,dive"`
	PartitionKeys    []string       `json:"partition_keys,omitempty"`
	Delimiter        string         `json:"delimiter,omitempty"`
	SerializationLib string         `json:"serialization_lib,omitempty"`
}

// LoadTableConfig reads and decodes a table definition file.
func LoadTableConfig(path string) (*TableConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table config: %w", err)
	}

	config := &TableConfig{}
	if err := json.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("failed to parse table config: %w", err)
	}
	return config, nil
}

// Descriptor validates the config and builds the descriptor from it.
func (c *TableConfig) Descriptor() (*TableDescriptor, error) {
	if err := validator.New().Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	columnNames := make([]string, len(c.Columns))
	columnTypes := make([]string, len(c.Columns))
	for i, column := range c.Columns {
		columnNames[i] = column.Name
		columnTypes[i] = column.Type
	}

	opts := []Option{
		WithDatabase(c.Database),
		WithPartitionKeys(c.PartitionKeys...),
		WithDelimiter(c.Delimiter),
	}
	if c.SerializationLib != "" {
		opts = append(opts, WithSerializationLib(c.SerializationLib))
	}

	return NewTableDescriptor(c.Table, columnNames, columnTypes, opts...)
}

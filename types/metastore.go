package types

// DTOs mirroring the Hive metastore Table shape. These are the objects a
// metastore client ultimately registers; hivetap only constructs them.

// FieldSchema is a single column of a metastore table: name, Hive type
// and a free-form comment.
type FieldSchema struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Comment string `json:"comment"`
}

// SerDeInfo names the serialization library used for the table's rows and
// carries its parameters.
type SerDeInfo struct {
	SerializationLib string            `json:"serializationLib"`
	Parameters       map[string]string `json:"parameters,omitempty"`
}

// StorageDescriptor describes how the table's data files are laid out and
// encoded. Cols holds only the data columns; partition columns live on
// Table.PartitionKeys.
type StorageDescriptor struct {
	Cols         []FieldSchema `json:"cols"`
	InputFormat  string        `json:"inputFormat"`
	OutputFormat string        `json:"outputFormat"`
	SerdeInfo    SerDeInfo     `json:"serdeInfo"`
}

// Table is the metastore-side table definition.
type Table struct {
	DatabaseName  string            `json:"dbName"`
	TableName     string            `json:"tableName"`
	Sd            StorageDescriptor `json:"sd"`
	PartitionKeys []FieldSchema     `json:"partitionKeys,omitempty"`
}

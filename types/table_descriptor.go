package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/datazip-inc/hivetap/constants"
	"github.com/datazip-inc/hivetap/pkg/textserde"
	"github.com/datazip-inc/hivetap/utils"
)

// TableDescriptor holds validated metadata of a Hive table (name, typed
// columns, partitioning, row encoding) and translates it into the two
// shapes the rest of the world wants: the metastore Table object used for
// registration, and the sink field projection plus delimited-text scheme
// used when reading and writing the table's files.
//
// A descriptor is validated once at construction and never mutated;
// accessors hand out copies, so instances are safe to share.
type TableDescriptor struct {
	databaseName     string
	tableName        string
	columnNames      []string
	columnTypes      []string
	partitionKeys    []string
	delimiter        string
	serializationLib string
}

// Option tweaks an optional descriptor field before validation.
type Option func(*TableDescriptor)

// WithDatabase sets the database; empty keeps the Hive default.
func WithDatabase(databaseName string) Option {
	return func(d *TableDescriptor) {
		d.databaseName = databaseName
	}
}

// WithPartitionKeys declares the partition columns. Every key must also be
// a declared column.
func WithPartitionKeys(partitionKeys ...string) Option {
	return func(d *TableDescriptor) {
		d.partitionKeys = partitionKeys
	}
}

// WithDelimiter sets the field delimiter; empty keeps the Hive default ^A.
func WithDelimiter(delimiter string) Option {
	return func(d *TableDescriptor) {
		d.delimiter = delimiter
	}
}

// WithSerializationLib sets the serde class registered for the table.
func WithSerializationLib(serializationLib string) Option {
	return func(d *TableDescriptor) {
		d.serializationLib = serializationLib
	}
}

// NewTableDescriptor builds and validates a descriptor. columnNames and
// columnTypes are positionally paired and must be non-empty and of equal
// length; tableName must be non-empty; every partition key must be one of
// the column names. Violations return an error wrapping ErrInvalidConfig.
func NewTableDescriptor(tableName string, columnNames, columnTypes []string, opts ...Option) (*TableDescriptor, error) {
	descriptor := &TableDescriptor{
		tableName:        tableName,
		columnNames:      utils.CopySlice(columnNames),
		columnTypes:      utils.CopySlice(columnTypes),
		serializationLib: constants.DefaultSerializationLib,
	}
	for _, opt := range opts {
		opt(descriptor)
	}
	descriptor.partitionKeys = utils.CopySlice(descriptor.partitionKeys)

	if descriptor.databaseName == "" {
		descriptor.databaseName = constants.DefaultDatabase
	}
	if descriptor.delimiter == "" {
		descriptor.delimiter = constants.DefaultDelimiter
	}

	if strings.TrimSpace(tableName) == "" {
		return nil, fmt.Errorf("%w: table name cannot be empty", ErrInvalidConfig)
	}
	if len(descriptor.columnNames) == 0 || len(descriptor.columnTypes) == 0 ||
		len(descriptor.columnNames) != len(descriptor.columnTypes) {
		return nil, fmt.Errorf("%w: column names and types cannot be empty and must have the same size (%d names, %d types)",
			ErrInvalidConfig, len(descriptor.columnNames), len(descriptor.columnTypes))
	}
	for _, key := range descriptor.partitionKeys {
		if !utils.ExistInArray(descriptor.columnNames, key) {
			return nil, fmt.Errorf("%w: partition key [%s] not present in column names", ErrInvalidConfig, key)
		}
	}

	return descriptor, nil
}

// IsPartitioned reports whether any partition keys are declared.
func (d *TableDescriptor) IsPartitioned() bool {
	return len(d.partitionKeys) > 0
}

// ToMetastoreTable converts the descriptor into a metastore Table ready
// for registration. The storage descriptor lists only the non-partition
// columns; partition columns are attached as the table's partition keys,
// in declaration order of the partition keys.
func (d *TableDescriptor) ToMetastoreTable() *Table {
	table := &Table{
		DatabaseName: d.databaseName,
		TableName:    d.tableName,
	}

	sd := StorageDescriptor{
		InputFormat:  constants.DefaultInputFormat,
		OutputFormat: constants.DefaultOutputFormat,
		SerdeInfo: SerDeInfo{
			SerializationLib: d.serializationLib,
			Parameters: map[string]string{
				constants.SerdeParamSerializationFormat: d.delimiter,
				constants.SerdeParamFieldDelim:          d.delimiter,
			},
		},
	}
	for index, columnName := range d.columnNames {
		if !utils.ExistInArray(d.partitionKeys, columnName) {
			sd.Cols = append(sd.Cols, FieldSchema{
				Name:    columnName,
				Type:    d.columnTypes[index],
				Comment: constants.ColumnComment,
			})
		}
	}
	table.Sd = sd

	if d.IsPartitioned() {
		table.PartitionKeys = d.partitionSchema()
	}

	return table
}

// partitionSchema emits one FieldSchema per partition key, looked up in
// the column list, preserving partition key order.
func (d *TableDescriptor) partitionSchema() []FieldSchema {
	schema := make([]FieldSchema, 0, len(d.partitionKeys))
	for _, key := range d.partitionKeys {
		index := slices.Index(d.columnNames, key)
		schema = append(schema, FieldSchema{
			Name: d.columnNames[index],
			Type: d.columnTypes[index],
		})
	}
	return schema
}

// ToFields returns the sink field projection: the column names that appear
// inline in the data files. Unpartitioned tables keep every column in
// declaration order; partitioned tables drop the partition columns,
// preserving the relative order of the rest. Removal is by name, so
// duplicate column names shadowing a partition key will surprise you.
func (d *TableDescriptor) ToFields() []string {
	if !d.IsPartitioned() {
		return utils.CopySlice(d.columnNames)
	}

	fields := utils.CopySlice(d.columnNames)
	for _, key := range d.partitionKeys {
		if index := slices.Index(fields, key); index >= 0 {
			fields = append(fields[:index], fields[index+1:]...)
		}
	}
	return fields
}

// ToScheme builds the delimited-text scheme for reading and writing the
// table's files, projected onto the sink fields.
func (d *TableDescriptor) ToScheme() (*textserde.Scheme, error) {
	return textserde.NewScheme(d.delimiter, d.ToFields())
}

// Partition returns the partition descriptor keyed by the partition field
// names. Unpartitioned tables have none; the error wraps
// ErrUnsupportedOperation, so check IsPartitioned first.
func (d *TableDescriptor) Partition() (*Partition, error) {
	if !d.IsPartitioned() {
		return nil, fmt.Errorf("%w: table [%s] is not partitioned", ErrUnsupportedOperation, d.tableName)
	}
	return NewPartition(d.partitionKeys), nil
}

// FilesystemPath returns the table's directory relative to the warehouse
// root, following the metastore layout: bare table name for the default
// database, "<db>.db/<table>" otherwise.
func (d *TableDescriptor) FilesystemPath() string {
	if d.databaseName == constants.DefaultDatabase {
		return d.tableName
	}
	return fmt.Sprintf("%s.db/%s", d.databaseName, d.tableName)
}

func (d *TableDescriptor) DatabaseName() string {
	return d.databaseName
}

func (d *TableDescriptor) TableName() string {
	return d.tableName
}

func (d *TableDescriptor) ColumnNames() []string {
	return utils.CopySlice(d.columnNames)
}

func (d *TableDescriptor) ColumnTypes() []string {
	return utils.CopySlice(d.columnTypes)
}

func (d *TableDescriptor) PartitionKeys() []string {
	return utils.CopySlice(d.partitionKeys)
}

func (d *TableDescriptor) Delimiter() string {
	return d.delimiter
}

func (d *TableDescriptor) SerializationLib() string {
	return d.serializationLib
}

// Equal compares all seven fields structurally.
func (d *TableDescriptor) Equal(other *TableDescriptor) bool {
	if d == other {
		return d != nil
	}
	if d == nil || other == nil {
		return false
	}
	return d.databaseName == other.databaseName &&
		d.tableName == other.tableName &&
		d.delimiter == other.delimiter &&
		d.serializationLib == other.serializationLib &&
		slices.Equal(d.columnNames, other.columnNames) &&
		slices.Equal(d.columnTypes, other.columnTypes) &&
		slices.Equal(d.partitionKeys, other.partitionKeys)
}

// Hash digests the same fields Equal compares; equal descriptors hash
// equal.
func (d *TableDescriptor) Hash() uint64 {
	digest := xxhash.New()
	for _, part := range [][]string{
		{d.databaseName, d.tableName, d.delimiter, d.serializationLib},
		d.columnNames,
		d.columnTypes,
		d.partitionKeys,
	} {
		for _, field := range part {
			_, _ = digest.WriteString(field)
			_, _ = digest.Write([]byte{0})
		}
		_, _ = digest.Write([]byte{0xff})
	}
	return digest.Sum64()
}

// String is a debug dump, not a serialization format.
func (d *TableDescriptor) String() string {
	return fmt.Sprintf("TableDescriptor{databaseName=%q, tableName=%q, columnNames=%v, columnTypes=%v, partitionKeys=%v, delimiter=%q, serializationLib=%q}",
		d.databaseName, d.tableName, d.columnNames, d.columnTypes, d.partitionKeys, d.delimiter, d.serializationLib)
}

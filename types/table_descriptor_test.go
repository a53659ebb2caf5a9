package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datazip-inc/hivetap/constants"
)

func usersDescriptor(t *testing.T, opts ...Option) *TableDescriptor {
	t.Helper()
	descriptor, err := NewTableDescriptor("users",
		[]string{"id", "name", "dt"},
		[]string{"int", "string", "string"},
		opts...)
	require.NoError(t, err)
	return descriptor
}

func TestNewTableDescriptorDefaults(t *testing.T) {
	descriptor := usersDescriptor(t)

	assert.Equal(t, constants.DefaultDatabase, descriptor.DatabaseName(), "Database should fall back to the Hive default")
	assert.Equal(t, constants.DefaultDelimiter, descriptor.Delimiter(), "Delimiter should fall back to ^A")
	assert.Equal(t, constants.DefaultSerializationLib, descriptor.SerializationLib(), "Serde should fall back to LazySimpleSerDe")
	assert.False(t, descriptor.IsPartitioned())
	assert.Empty(t, descriptor.PartitionKeys())
}

func TestNewTableDescriptorValidation(t *testing.T) {
	testCases := []struct {
		name        string
		tableName   string
		columnNames []string
		columnTypes []string
		opts        []Option
	}{
		{
			name:        "empty table name",
			tableName:   "",
			columnNames: []string{"id"},
			columnTypes: []string{"int"},
		},
		{
			name:        "empty columns",
			tableName:   "t",
			columnNames: []string{},
			columnTypes: []string{},
		},
		{
			name:        "mismatched column counts",
			tableName:   "t",
			columnNames: []string{"id", "name"},
			columnTypes: []string{"int"},
		},
		{
			name:        "types without names",
			tableName:   "t",
			columnNames: []string{},
			columnTypes: []string{"int"},
		},
		{
			name:        "partition key not a column",
			tableName:   "t",
			columnNames: []string{"id", "name"},
			columnTypes: []string{"int", "string"},
			opts:        []Option{WithPartitionKeys("dt")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			descriptor, err := NewTableDescriptor(tc.tableName, tc.columnNames, tc.columnTypes, tc.opts...)
			assert.Nil(t, descriptor)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestToFields(t *testing.T) {
	testCases := []struct {
		name          string
		partitionKeys []string
		expected      []string
	}{
		{
			name:     "unpartitioned returns all columns in order",
			expected: []string{"id", "name", "dt"},
		},
		{
			name:          "partition columns removed, survivor order preserved",
			partitionKeys: []string{"dt"},
			expected:      []string{"id", "name"},
		},
		{
			name:          "multiple partition keys",
			partitionKeys: []string{"dt", "name"},
			expected:      []string{"id"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			descriptor := usersDescriptor(t, WithPartitionKeys(tc.partitionKeys...))
			assert.Equal(t, tc.expected, descriptor.ToFields())
		})
	}
}

func TestToMetastoreTableUnpartitioned(t *testing.T) {
	descriptor := usersDescriptor(t)
	table := descriptor.ToMetastoreTable()

	assert.Equal(t, constants.DefaultDatabase, table.DatabaseName)
	assert.Equal(t, "users", table.TableName)
	assert.Equal(t, []FieldSchema{
		{Name: "id", Type: "int", Comment: constants.ColumnComment},
		{Name: "name", Type: "string", Comment: constants.ColumnComment},
		{Name: "dt", Type: "string", Comment: constants.ColumnComment},
	}, table.Sd.Cols)
	assert.Empty(t, table.PartitionKeys)

	assert.Equal(t, constants.DefaultInputFormat, table.Sd.InputFormat)
	assert.Equal(t, constants.DefaultOutputFormat, table.Sd.OutputFormat)
	assert.Equal(t, constants.DefaultSerializationLib, table.Sd.SerdeInfo.SerializationLib)
	assert.Equal(t, map[string]string{
		constants.SerdeParamSerializationFormat: constants.DefaultDelimiter,
		constants.SerdeParamFieldDelim:          constants.DefaultDelimiter,
	}, table.Sd.SerdeInfo.Parameters)
}

func TestToMetastoreTablePartitioned(t *testing.T) {
	descriptor := usersDescriptor(t, WithPartitionKeys("dt"), WithDelimiter("\t"))
	table := descriptor.ToMetastoreTable()

	// partition columns must not appear inline
	assert.Equal(t, []FieldSchema{
		{Name: "id", Type: "int", Comment: constants.ColumnComment},
		{Name: "name", Type: "string", Comment: constants.ColumnComment},
	}, table.Sd.Cols)
	assert.Equal(t, []FieldSchema{
		{Name: "dt", Type: "string"},
	}, table.PartitionKeys)
	assert.Equal(t, "\t", table.Sd.SerdeInfo.Parameters[constants.SerdeParamFieldDelim])
}

func TestPartitionSchemaFollowsKeyOrder(t *testing.T) {
	descriptor, err := NewTableDescriptor("events",
		[]string{"id", "country", "dt"},
		[]string{"bigint", "string", "string"},
		WithPartitionKeys("dt", "country"))
	require.NoError(t, err)

	table := descriptor.ToMetastoreTable()
	assert.Equal(t, []FieldSchema{
		{Name: "dt", Type: "string"},
		{Name: "country", Type: "string"},
	}, table.PartitionKeys, "Partition schema should follow partition key order, not column order")
}

func TestPartition(t *testing.T) {
	descriptor := usersDescriptor(t, WithPartitionKeys("dt"))
	partition, err := descriptor.Partition()
	require.NoError(t, err)
	assert.Equal(t, []string{"dt"}, partition.Fields())

	flat := usersDescriptor(t)
	partition, err = flat.Partition()
	assert.Nil(t, partition)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestToScheme(t *testing.T) {
	descriptor := usersDescriptor(t, WithPartitionKeys("dt"), WithDelimiter("|"))
	scheme, err := descriptor.ToScheme()
	require.NoError(t, err)

	assert.Equal(t, "|", scheme.Delimiter())
	assert.Equal(t, []string{"id", "name"}, scheme.SinkFields(), "Scheme should project only the sink fields")
}

func TestFilesystemPath(t *testing.T) {
	testCases := []struct {
		name     string
		opts     []Option
		expected string
	}{
		{
			name:     "default database",
			expected: "users",
		},
		{
			name:     "explicit default database",
			opts:     []Option{WithDatabase("default")},
			expected: "users",
		},
		{
			name:     "named database",
			opts:     []Option{WithDatabase("analytics")},
			expected: "analytics.db/users",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			descriptor := usersDescriptor(t, tc.opts...)
			assert.Equal(t, tc.expected, descriptor.FilesystemPath())
		})
	}
}

func TestEqualAndHash(t *testing.T) {
	build := func(opts ...Option) *TableDescriptor {
		return usersDescriptor(t, opts...)
	}

	a := build(WithPartitionKeys("dt"))
	b := build(WithPartitionKeys("dt"))
	assert.True(t, a.Equal(b), "Descriptors built from identical arguments should be equal")
	assert.Equal(t, a.Hash(), b.Hash(), "Equal descriptors should hash equal")

	variants := map[string]*TableDescriptor{
		"different database":      build(WithPartitionKeys("dt"), WithDatabase("analytics")),
		"different delimiter":     build(WithPartitionKeys("dt"), WithDelimiter(",")),
		"different serde":         build(WithPartitionKeys("dt"), WithSerializationLib("OpenCSVSerde")),
		"different partitioning":  build(),
		"different partition key": build(WithPartitionKeys("name")),
	}
	for name, other := range variants {
		t.Run(name, func(t *testing.T) {
			assert.False(t, a.Equal(other))
			assert.NotEqual(t, a.Hash(), other.Hash())
		})
	}

	assert.False(t, a.Equal(nil))
}

func TestAccessorsReturnCopies(t *testing.T) {
	descriptor := usersDescriptor(t, WithPartitionKeys("dt"))

	names := descriptor.ColumnNames()
	names[0] = "mutated"
	assert.Equal(t, []string{"id", "name", "dt"}, descriptor.ColumnNames(), "Mutating an accessor result should not leak into the descriptor")

	keys := descriptor.PartitionKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"dt"}, descriptor.PartitionKeys())
}

func TestConstructorCopiesInput(t *testing.T) {
	columnNames := []string{"id", "name"}
	descriptor, err := NewTableDescriptor("t", columnNames, []string{"int", "string"})
	require.NoError(t, err)

	columnNames[0] = "mutated"
	assert.Equal(t, []string{"id", "name"}, descriptor.ColumnNames(), "Descriptor should not alias caller-owned slices")
}

func TestStringDump(t *testing.T) {
	descriptor := usersDescriptor(t, WithPartitionKeys("dt"))
	dump := descriptor.String()
	assert.Contains(t, dump, `tableName="users"`)
	assert.Contains(t, dump, "partitionKeys=[dt]")
}

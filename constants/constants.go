package constants

const (
	// DefaultDatabase is the database Hive assumes when none is given.
	DefaultDatabase = "default"

	// DefaultDelimiter is the field delimiter Hive uses for delimited text
	// tables, the single control character ^A (0x01).
	DefaultDelimiter = "\x01"

	// DefaultInputFormat is the input format registered for plain text tables.
	DefaultInputFormat = "org.apache.hadoop.mapred.TextInputFormat"

	// DefaultOutputFormat is the output format registered for delimited text tables.
	DefaultOutputFormat = "org.apache.hadoop.hive.ql.io.HiveIgnoreKeyTextOutputFormat"

	// DefaultSerializationLib is the serde Hive falls back to for delimited rows.
	DefaultSerializationLib = "org.apache.hadoop.hive.serde2.lazy.LazySimpleSerDe"

	// Serde parameter keys understood by the metastore.
	SerdeParamSerializationFormat = "serialization.format"
	SerdeParamFieldDelim          = "field.delim"

	// ColumnComment is attached to every data column registered by hivetap.
	ColumnComment = "created by hivetap"

	// ConfigFolder is the env/viper key pointing at the folder where logs
	// and other artifacts are written.
	ConfigFolder = "CONFIG_FOLDER"
)

package logging

// Standardized field names for structured logging.
const (
	FieldComponent     = "component"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldFormat        = "format"
	FieldStore         = "store"
	FieldKey           = "key"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldSkipped       = "skipped"
	FieldPages         = "pages"
	FieldBytes         = "bytes"
	FieldDelimiter     = "delimiter"
	FieldOutputFile    = "output_file"
)

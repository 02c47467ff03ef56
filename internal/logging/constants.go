package logging

// Standardized field names for structured logging.
// Every component logs with these keys so log lines from the loader,
// the reports and the menu can be filtered the same way.
const (
	FieldFile      = "file_path"
	FieldSession   = "session_id"
	FieldCommand   = "command"
	FieldCategory  = "category"
	FieldMonth     = "month"
	FieldReason    = "reason"
	FieldOperation = "operation"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldCount     = "count"
	FieldDelimiter = "delimiter"
	FieldFormat    = "format"
	FieldRow       = "row"
	FieldState     = "state"
)

package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldPath        = "path"
	FieldBackend     = "backend"
	FieldWeekStart   = "week_start"
	FieldCategory    = "category"
	FieldTxType      = "type"
	FieldAmountCents = "amount_cents"
	FieldDate        = "date"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentCLI       = "cli"
	ComponentBackend   = "backend"
	ComponentStorage   = "storage"
	ComponentFilestore = "filestore"
	ComponentLifecycle = "lifecycle"
	ComponentRecorder  = "recorder"
	ComponentReports   = "reports"
)

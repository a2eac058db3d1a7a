package log

const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldOwnerID    = "owner_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldRecordID   = "record_id"
)

const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentExpense   = "expense"
	ComponentBudget    = "budget"
	ComponentSavings   = "savings"
	ComponentDashboard = "dashboard"
	ComponentExport    = "export"
	ComponentStorage   = "storage"
)

const (
	OpCreate     = "create"
	OpRead       = "read"
	OpUpdate     = "update"
	OpDelete     = "delete"
	OpList       = "list"
	OpRecompute  = "recompute"
	OpContribute = "contribute"
	OpSummarize  = "summarize"
	OpExport     = "export"
	OpStartup    = "startup"
	OpShutdown   = "shutdown"
)

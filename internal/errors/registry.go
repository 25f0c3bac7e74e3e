package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Configuration (E101-E199)
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "plebisadmin.json could not be read or is not valid JSON.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or not one of the accepted values.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid duration",
		Detail:   `Durations use Go syntax, for example "500ms", "10s" or "1m".`,
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid environment override",
		Detail:   "An environment variable override could not be parsed.",
	},

	// Documents (E201-E299)
	"E201": {
		Category: CategoryDocument,
		Message:  "Document not found",
		Detail:   "The requested legal document does not exist in the configured store.",
	},
	"E202": {
		Category: CategoryDocument,
		Message:  "Invalid document name",
		Detail:   "Document names are plain PDF file names without path separators.",
	},
	"E203": {
		Category: CategoryDocument,
		Message:  "Document store unavailable",
		Detail:   "The document store returned an unexpected error.",
	},

	// Rendering (E301-E399)
	"E301": {
		Category: CategoryRender,
		Message:  "Page render failed",
		Detail:   "The admin page could not be serialized to HTML.",
	},

	// Server (E401-E499)
	"E401": {
		Category: CategoryServer,
		Message:  "Listener failed",
		Detail:   "The HTTP server could not bind or stopped unexpectedly.",
	},
	"E402": {
		Category: CategoryServer,
		Message:  "Tracing setup failed",
		Detail:   "The OTLP trace exporter could not be created.",
	},
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Rendering (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryValidation,
		Message:  "Unsupported attribute value kind",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Missing render capability",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Missing context capability",
	},
	"E004": {
		Category: CategoryRuntime,
		Message:  "Render result is not text",
	},
	"E005": {
		Category: CategoryRuntime,
		Message:  "Resolved node cannot be formatted",
	},

	// ============================================
	// Configuration (E100-E109)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// ============================================
	// Documents (E110-E119)
	// ============================================

	"E110": {
		Category: CategoryValidation,
		Message:  "Malformed document",
	},
	"E111": {
		Category: CategoryValidation,
		Message:  "Unknown component",
	},
	"E112": {
		Category: CategoryIO,
		Message:  "Document not readable",
	},
	"E113": {
		Category: CategoryIO,
		Message:  "Output not writable",
	},

	// ============================================
	// Outer surfaces (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryIO,
		Message:  "Publish failed",
	},
	"E130": {
		Category: CategoryIO,
		Message:  "Server failed",
	},

	// ============================================
	// Scaffolding (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryConfig,
		Message:  "Unknown project template",
	},
	"E141": {
		Category: CategoryIO,
		Message:  "Project already initialised",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

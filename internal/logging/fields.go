package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldInput = "input"

	// Engine fields.
	FieldBlocks = "blocks"
	FieldLines  = "lines"
	FieldKind   = "kind"

	// Image resolution fields.
	FieldFilename = "filename"
	FieldScheme   = "scheme"
	FieldBytes    = "bytes"

	// Render fields.
	FieldWidth    = "width"
	FieldColor    = "color"
	FieldLanguage = "language"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

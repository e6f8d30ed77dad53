package diag

// Diagnostic is an immutable value describing one reportable condition.
type Diagnostic struct {
	Severity Severity
	Category Category
	Message  string
}

// New constructs a Diagnostic.
func New(sev Severity, cat Category, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Category: cat, Message: msg}
}

// String renders the diagnostic in its wire format:
// "{Severity}: {CategoryDescription}\n{Message}".
func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Category.Description() + "\n" + d.Message
}

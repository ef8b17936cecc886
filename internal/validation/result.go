package validation

// Result is the outcome of validating a unit, building or property.
// Validators never return Go errors: warnings never block an operation, and
// errors block only the strict create/finalize path, not autosave.
type Result struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func newResult() *Result {
	return &Result{IsValid: true, Errors: []string{}, Warnings: []string{}}
}

func (r *Result) addError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.IsValid = false
}

func (r *Result) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// merge folds another result into r, prefixing each message.
func (r *Result) merge(other *Result, prefix string) {
	for _, e := range other.Errors {
		r.addError(prefix + e)
	}
	for _, w := range other.Warnings {
		r.addWarning(prefix + w)
	}
}

package form

// Status is what the presentation layer shows under the form.
type Status struct {
	Error   string
	Success string
}

// StatusReporter keeps at most one error and one success message.
type StatusReporter struct {
	current Status
}

func (r *StatusReporter) Fail(msg string) {
	r.current.Error = msg
}

func (r *StatusReporter) Succeed(msg string) {
	r.current.Success = msg
}

func (r *StatusReporter) ClearError() {
	r.current.Error = ""
}

// Clear drops both messages.
func (r *StatusReporter) Clear() {
	r.current = Status{}
}

func (r *StatusReporter) Current() Status {
	return r.current
}

// Package form is the multi-step asset form behind the CLI.
//
// A Controller owns one form: the picked document (checked by a
// FileValidator), the descriptive fields (FieldStore), the current step
// (StepController) and the message shown to the user (StatusReporter).
// Submitting from the review step hands a snapshot of the form to a
// Submitter and, on success, resets everything for the next asset.
//
// Steps:
//
//	-1  Upload Document     (needs an accepted PDF to leave)
//	 0  Basic Information   (title, description)
//	 1  Additional Details  (price, category, location, contactInfo)
//	 2  Review & Create     (submit)
package form

package form

import "github.com/ProgrammedByHussain/LandLocks/internal/common"

const (
	// UploadStep precedes the content steps.
	UploadStep = -1
	// ContentSteps is the number of steps after the upload.
	ContentSteps = 3
)

var stepLabels = []string{"Upload Document", "Basic Information", "Additional Details", "Review & Create"}

// StepLabel names a step; unknown steps yield "".
func StepLabel(step int) string {
	i := step - UploadStep
	if i < 0 || i >= len(stepLabels) {
		return ""
	}
	return stepLabels[i]
}

// StepController walks the steps UploadStep..n-1. It has no terminal state.
type StepController struct {
	state int
	n     int
}

func NewStepController(n int) *StepController {
	return &StepController{state: UploadStep, n: n}
}

func (c *StepController) State() int {
	return c.state
}

func (c *StepController) Final() int {
	return c.n - 1
}

func (c *StepController) AtFinal() bool {
	return c.state == c.Final()
}

// Advance moves one step forward. Leaving the upload step requires an
// accepted document.
func (c *StepController) Advance(hasFile bool) error {
	if c.state == UploadStep && !hasFile {
		return common.ErrNoDocument
	}
	if c.state >= c.Final() {
		return common.ErrLastStep
	}
	c.state++
	return nil
}

func (c *StepController) Retreat() error {
	if c.state <= UploadStep {
		return common.ErrFirstStep
	}
	c.state--
	return nil
}

func (c *StepController) Reset() {
	c.state = UploadStep
}

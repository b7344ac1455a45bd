package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const unexpectedMessage = "An unexpected error occurred"

var failureMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("✖")

// CLIError is an error with an explicit process exit code.
type CLIError struct {
	Message  string
	ExitCode int
}

// NewCLIError returns a CLIError with exit code 1.
func NewCLIError(message string) *CLIError {
	return &CLIError{Message: message, ExitCode: 1}
}

func (e *CLIError) Error() string {
	return e.Message
}

// ErrorResult is what gets shown to the user for a failed command.
type ErrorResult struct {
	Message  string
	ExitCode int
}

// HandleError converts any error into a message and exit code. Every failure
// exits with 1 unless a CLIError says otherwise.
func HandleError(err error) ErrorResult {
	var ce *CLIError
	if errors.As(err, &ce) {
		code := ce.ExitCode
		if code == 0 {
			code = 1
		}
		return ErrorResult{Message: ce.Message, ExitCode: code}
	}

	if err == nil || err.Error() == "" {
		return ErrorResult{Message: unexpectedMessage, ExitCode: 1}
	}
	return ErrorResult{Message: err.Error(), ExitCode: 1}
}

// PrintError writes the failure marker and message for err to w and returns
// the exit code to use.
func PrintError(w io.Writer, err error) int {
	res := HandleError(err)
	fmt.Fprintf(w, "%s %s\n", failureMarker, res.Message)
	return res.ExitCode
}

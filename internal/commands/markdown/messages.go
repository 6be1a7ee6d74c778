package markdowncmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const convertFileMessageType = "md2html.markdown.convert_file"

// ConvertFileCommand converts the Markdown file at InputPath into HTML
// fragments written to OutputPath. The output file is created or truncated.
type ConvertFileCommand struct {
	// InputPath is the Markdown source. It must name an existing regular file.
	InputPath string `json:"input_path"`
	// OutputPath receives the HTML fragments.
	OutputPath string `json:"output_path"`
	// StripFrontMatter removes a leading front matter block before conversion.
	StripFrontMatter bool `json:"strip_front_matter,omitempty"`
	// RunID tags log entries for this conversion. A new ID is generated when nil.
	RunID uuid.UUID `json:"run_id,omitempty"`
}

// Type implements command.Message.
func (ConvertFileCommand) Type() string { return convertFileMessageType }

// Validate ensures an output path is present before handlers execute. A blank
// input path is not rejected here: it names no file, so the handler reports it
// as a missing input.
func (cmd ConvertFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.OutputPath, validation.Required, validation.By(notBlank("output_path_required", "output path is required"))),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError("md2html.markdown.convert_file."+code, message)
		}
		return nil
	}
}

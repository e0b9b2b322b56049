package workflows

import (
	"bytes"
	"context"

	"github.com/PolarWolf314/rcli/internal/csvconv"
	"github.com/PolarWolf314/rcli/internal/utils"
)

// ConvertCSVOptions configures the csv workflow.
type ConvertCSVOptions struct {
	Input string

	// Output defaults to output.<format extension>.
	Output string

	csvconv.Options
}

// ConvertCSVResult contains the outcome of a conversion.
type ConvertCSVResult struct {
	Output string
	Bytes  int
}

// ConvertCSV converts the input file and writes the document to Output. The
// output file is only created once the whole input converted cleanly.
func ConvertCSV(ctx context.Context, opts ConvertCSVOptions) (*ConvertCSVResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		output = "output." + opts.Format.Extension()
	}

	reader, err := utils.GetReader(opts.Input)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var buf bytes.Buffer
	if err := csvconv.Convert(reader, &buf, opts.Options); err != nil {
		return nil, err
	}

	if err := utils.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return nil, err
	}
	return &ConvertCSVResult{Output: output, Bytes: buf.Len()}, nil
}

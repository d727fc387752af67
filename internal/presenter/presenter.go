package presenter

import (
	"fmt"
	"io"
)

// Print writes a brightness scalar to w with exactly two digits after
// the decimal point, followed by a newline. On the success path this is
// the pipeline's only output.
func Print(w io.Writer, brightness float64) error {
	_, err := fmt.Fprintf(w, "%.2f\n", brightness)
	return err
}

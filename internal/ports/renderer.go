package ports

import (
	"io"

	"github.com/bft-labs/sigcrop/pkg/diagplot"
)

// Renderer draws the diagnostic figure of one crop.
// *diagplot.Renderer satisfies this interface.
type Renderer interface {
	// Suffix is the image file suffix, including the dot (e.g., ".png").
	Suffix() string

	// Render writes the encoded image to w.
	Render(w io.Writer, fig diagplot.Figure) error
}

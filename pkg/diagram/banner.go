package diagram

import (
	"bufio"
	"io"
)

// WriteBanner writes the diagram's summary banner for an image written to
// path. The output depends only on the banner text and path, so repeated
// runs print identical bytes.
func (d *Diagram) WriteBanner(w io.Writer, path string) error {
	b := d.Banner
	bw := bufio.NewWriter(w)

	if b.Headline != "" {
		bw.WriteString(b.Headline + "\n")
	}
	if b.OutputCaption != "" {
		bw.WriteString(b.OutputCaption + " " + path + "\n")
	}
	if b.Section != "" || len(b.Items) > 0 {
		bw.WriteString("\n")
	}
	if b.Section != "" {
		bw.WriteString(b.Section + "\n")
	}
	for _, item := range b.Items {
		bw.WriteString("  " + item + "\n")
	}
	return bw.Flush()
}

package pdf

import (
	"bufio"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// ExtractToFile writes the plain text of every page of pdfPath to outPath
// as UTF-8. Encrypted or malformed documents surface the parser's error.
func ExtractToFile(pdfPath string, outPath string) error {
	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return errors.Wrapf(err, "open pdf %q", pdfPath)
	}
	defer f.Close()

	text, err := reader.GetPlainText()
	if err != nil {
		return errors.Wrapf(err, "extract text from %q", pdfPath)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "create %q", outPath)
	}

	w := bufio.NewWriter(out)
	if _, err := io.Copy(w, text); err != nil {
		out.Close()
		return errors.Wrapf(err, "write %q", outPath)
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return errors.Wrapf(err, "flush %q", outPath)
	}

	return out.Close()
}

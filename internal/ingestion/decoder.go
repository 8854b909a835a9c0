package ingestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

// Decoder extracts plain text from a document.
type Decoder interface {
	Decode(ctx context.Context, data []byte, format Format) (string, error)
}

// FileDecoder decodes documents, spilling binary formats to a unique
// temporary file under Dir that is removed before Decode returns.
type FileDecoder struct {
	Dir          string
	AntiwordPath string
	Logger       *zap.Logger
}

// NewFileDecoder creates a FileDecoder. An empty dir means the OS temp dir.
func NewFileDecoder(dir, antiwordPath string, logger *zap.Logger) *FileDecoder {
	if dir == "" {
		dir = os.TempDir()
	}
	if antiwordPath == "" {
		antiwordPath = "antiword"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileDecoder{Dir: dir, AntiwordPath: antiwordPath, Logger: logger}
}

// Decode returns the cleaned text of data interpreted as format. Failures,
// including documents with no text, are reported as *DecodeError.
func (d *FileDecoder) Decode(ctx context.Context, data []byte, format Format) (string, error) {
	if !Supported(format) {
		return "", &UnsupportedFileTypeError{Extension: string(format)}
	}

	var (
		text string
		err  error
	)
	switch format {
	case FormatTXT:
		text, err = decodePlain(data)
	case FormatHTML, FormatHTM:
		text, err = decodeHTML(data)
	default:
		text, err = d.decodeViaFile(ctx, data, format)
	}
	if err != nil {
		return "", &DecodeError{Format: format, Cause: err}
	}

	text = CleanText(text)
	if text == "" {
		return "", &DecodeError{Format: format, Cause: ErrNoText}
	}
	return text, nil
}

func (d *FileDecoder) decodeViaFile(ctx context.Context, data []byte, format Format) (string, error) {
	path, cleanup, err := d.writeTemp(data, format)
	if err != nil {
		return "", err
	}
	defer cleanup()

	switch format {
	case FormatPDF:
		return decodePDF(path)
	case FormatDOCX:
		return decodeDOCX(path)
	case FormatDOC:
		return d.decodeDOC(ctx, path)
	}
	return "", fmt.Errorf("no decoder for %s", format)
}

// writeTemp stores data under a fresh uuid name and returns a func that removes it.
func (d *FileDecoder) writeTemp(data []byte, format Format) (string, func(), error) {
	if err := os.MkdirAll(d.Dir, 0o700); err != nil {
		return "", nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	path := filepath.Join(d.Dir, uuid.NewString()+"."+string(format))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		_ = os.Remove(path)
		return "", nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			d.Logger.Warn("failed to remove temp file", zap.String("path", path), zap.Error(err))
		}
	}
	return path, cleanup, nil
}

func decodePlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("text is not valid UTF-8")
	}
	return string(data), nil
}

func decodeHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()

	// Block elements end a line so paragraphs don't run together.
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr, section, article").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}
	return body.Text(), nil
}

// decodePDF reads the plain text layer. The pdf package panics on some
// malformed inputs, so panics are turned into errors.
func decodePDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	var buf strings.Builder
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>`)
	xmlTag           = regexp.MustCompile(`<[^>]*>`)
)

func decodeDOCX(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "<w:tab/>", " ")
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

func (d *FileDecoder) decodeDOC(ctx context.Context, path string) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.AntiwordPath, path)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("antiword failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("antiword failed: %w", err)
	}
	return string(out), nil
}

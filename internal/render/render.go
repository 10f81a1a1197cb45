// Package render serializes a filtered file list plus metadata header into
// one of the supported export formats and writes the artifact file.
package render

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"time"

	"github.com/inovacc/linkr/internal/encoding"
	"github.com/inovacc/linkr/internal/model"
)

// timestampLayout names artifact files to second resolution.
const timestampLayout = "20060102_150405"

// headerTimeLayout formats the generation timestamp inside headers.
const headerTimeLayout = "2006-01-02 15:04:05"

// UnknownFormatError indicates a format name outside the supported set.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format: %s", e.Format)
}

// Entry is one exported file: its repository-relative path and raw URL.
type Entry struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Header is the metadata block prepended to every artifact.
type Header struct {
	Repository string    // owner/name
	Domain     string
	Branch     string
	Format     string
	Profile    string
	Exclude    string    // effective exclude pattern or "none"
	Generated  time.Time
}

func (h Header) lines() []string {
	return []string{
		"Repository: " + h.Repository,
		"Domain: " + h.Domain,
		"Branch: " + h.Branch,
		"Format: " + h.Format,
		"Generated: " + h.Generated.Format(headerTimeLayout),
		"Profile: " + h.Profile,
		"Exclude: " + h.Exclude,
	}
}

// Entries builds the rendered entry list from filtered paths and the raw
// URL prefix, in input order.
func Entries(paths []string, prefix string) []Entry {
	out := make([]Entry, 0, len(paths))

	for _, p := range paths {
		out = append(out, Entry{Filename: p, URL: prefix + p})
	}

	return out
}

// Options tweaks rendering behavior.
type Options struct {
	// StrictJSON emits a valid JSON document with the header folded into
	// a metadata object instead of the legacy comment-then-array layout.
	StrictJSON bool
}

// Render serializes header and entries in the named format. Unknown
// formats fail before any output is produced.
func Render(format string, h Header, entries []Entry, opts Options) ([]byte, error) {
	switch format {
	case model.FormatText:
		return renderText(h, entries), nil
	case model.FormatCSV:
		return renderCSV(h, entries), nil
	case model.FormatJSON:
		return renderJSON(h, entries, opts.StrictJSON)
	case model.FormatHTML:
		return renderHTML(h, entries), nil
	default:
		return nil, &UnknownFormatError{Format: format}
	}
}

// Extension returns the artifact file extension for format.
func Extension(format string) (string, error) {
	switch format {
	case model.FormatText:
		return "txt", nil
	case model.FormatCSV:
		return "csv", nil
	case model.FormatJSON:
		return "json", nil
	case model.FormatHTML:
		return "html", nil
	default:
		return "", &UnknownFormatError{Format: format}
	}
}

// ArtifactPath computes {outputDir}/{repoName}_{timestamp}.{ext}.
func ArtifactPath(outputDir, repoName, format string, at time.Time) (string, error) {
	ext, err := Extension(format)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.%s", repoName, at.Format(timestampLayout), ext)

	return filepath.Join(outputDir, name), nil
}

// WriteArtifact renders and writes the artifact, returning its path.
// Nothing is written when rendering fails.
func WriteArtifact(outputDir, repoName, format string, h Header, entries []Entry, opts Options) (string, error) {
	data, err := Render(format, h, entries, opts)
	if err != nil {
		return "", err
	}

	path, err := ArtifactPath(outputDir, repoName, format, h.Generated)
	if err != nil {
		return "", err
	}

	if err := encoding.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}

func renderText(h Header, entries []Entry) []byte {
	var buf bytes.Buffer

	for _, line := range h.lines() {
		buf.WriteString("# " + line + "\n")
	}

	for _, e := range entries {
		buf.WriteString(e.URL + "\n")
	}

	return buf.Bytes()
}

// renderCSV keeps the legacy quoting: paths and URLs are wrapped in double
// quotes with no escaping of embedded quotes or commas.
func renderCSV(h Header, entries []Entry) []byte {
	var buf bytes.Buffer

	for _, line := range h.lines() {
		buf.WriteString("# " + line + "\n")
	}

	buf.WriteString("filename,url\n")

	for _, e := range entries {
		buf.WriteString(`"` + e.Filename + `","` + e.URL + "\"\n")
	}

	return buf.Bytes()
}

// renderJSON defaults to the legacy layout: header as comment lines, then
// a JSON array. The file as a whole is then not strict JSON; strict mode
// folds the header into a metadata object instead.
func renderJSON(h Header, entries []Entry, strict bool) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}

	if strict {
		doc := struct {
			Meta struct {
				Repository string `json:"repository"`
				Domain     string `json:"domain"`
				Branch     string `json:"branch"`
				Format     string `json:"format"`
				Generated  string `json:"generated"`
				Profile    string `json:"profile"`
				Exclude    string `json:"exclude"`
			} `json:"meta"`
			Files []Entry `json:"files"`
		}{Files: entries}

		doc.Meta.Repository = h.Repository
		doc.Meta.Domain = h.Domain
		doc.Meta.Branch = h.Branch
		doc.Meta.Format = h.Format
		doc.Meta.Generated = h.Generated.Format(headerTimeLayout)
		doc.Meta.Profile = h.Profile
		doc.Meta.Exclude = h.Exclude

		data, err := encoding.ToJSONIndent(doc)
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	}

	var buf bytes.Buffer

	for _, line := range h.lines() {
		buf.WriteString("// " + line + "\n")
	}

	data, err := encoding.ToJSONIndent(entries)
	if err != nil {
		return nil, err
	}

	buf.Write(data)
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func renderHTML(h Header, entries []Entry) []byte {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\">\n")
	buf.WriteString("<title>" + html.EscapeString(h.Repository) + "</title>\n")
	buf.WriteString("</head>\n<body>\n")
	buf.WriteString("<h1>" + html.EscapeString(h.Repository) + "</h1>\n")

	buf.WriteString("<pre>\n")
	for _, line := range h.lines() {
		buf.WriteString(html.EscapeString(line) + "\n")
	}
	buf.WriteString("</pre>\n")

	buf.WriteString("<ul>\n")
	for _, e := range entries {
		buf.WriteString("<li><a href=\"" + html.EscapeString(e.URL) + "\" target=\"_blank\">" +
			html.EscapeString(e.Filename) + "</a></li>\n")
	}
	buf.WriteString("</ul>\n")

	buf.WriteString("</body>\n</html>\n")

	return buf.Bytes()
}

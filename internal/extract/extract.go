// Package extract turns reference documents into plain text for the
// analysis context. Plain text and markdown files are read directly;
// PDFs and images go through the Upstage document-parse API.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const defaultParseURL = "https://api.upstage.ai/v1/document-digitization"

var textExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// Extractor reads reference documents.
type Extractor struct {
	apiKey     string
	parseURL   string
	httpClient *http.Client
}

// New creates an Extractor. The API key may be empty if only plain-text
// files will be passed.
func New(apiKey string) *Extractor {
	return &Extractor{
		apiKey:     apiKey,
		parseURL:   defaultParseURL,
		httpClient: &http.Client{},
	}
}

// Text extracts and concatenates text from the given files, joined by
// blank lines. Errors on an empty file list, a missing path, or when no
// file yields any content.
func (e *Extractor) Text(ctx context.Context, paths []string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("no files given")
	}

	var parts []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("file not found: %s", p)
		}
		var (
			content string
			err     error
		)
		if textExtensions[strings.ToLower(filepath.Ext(p))] {
			content, err = readPlain(p)
		} else {
			content, err = e.parseDocument(ctx, p)
		}
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", p, err)
		}
		if content = strings.TrimSpace(content); content != "" {
			parts = append(parts, content)
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no content extracted from any of the given files")
	}
	return strings.Join(parts, "\n\n"), nil
}

func readPlain(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type parseResponse struct {
	Content struct {
		Text string `json:"text"`
		HTML string `json:"html"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// parseDocument sends one file to the document-parse API and returns
// the extracted text (falling back to the HTML rendering).
func (e *Extractor) parseDocument(ctx context.Context, path string) (string, error) {
	if e.apiKey == "" {
		return "", fmt.Errorf("document parsing requires an Upstage API key")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("document", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	w.WriteField("ocr", "force")
	w.WriteField("output_formats", `["text"]`)
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.parseURL, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call document parse: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed parseResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode parse response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("document parse error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("document parse status %d", resp.StatusCode)
	}
	if parsed.Content.Text != "" {
		return parsed.Content.Text, nil
	}
	return parsed.Content.HTML, nil
}

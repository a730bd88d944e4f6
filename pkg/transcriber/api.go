package transcriber

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

	"github.com/pkg/errors"
)

// transcribeChunk posts one audio chunk as multipart form data to the
// configured speech-to-text endpoint and returns the transcribed text.
func (t *Transcriber) transcribeChunk(ctx context.Context, chunkPath string) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fw, err := w.CreateFormFile("file", filepath.Base(chunkPath))
	if err != nil {
		return "", errors.Wrap(err, "create form file")
	}

	f, err := os.Open(chunkPath)
	if err != nil {
		return "", errors.Wrapf(err, "open chunk %q", chunkPath)
	}
	if _, err := io.Copy(fw, f); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "read chunk %q", chunkPath)
	}
	f.Close()

	if err := w.WriteField("model", t.cfg.Model); err != nil {
		return "", errors.Wrap(err, "write model field")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "finalize form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.APIURL, &body)
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)

	resp, err := t.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "api request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("api status %s: %s", resp.Status, bytes.TrimSpace(payload))
	}

	var parsed transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "decode response")
	}

	return parsed.Text, nil
}

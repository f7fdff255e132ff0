package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"sort"

	"mindbloom/models"
)

// EncodeMultipart writes fields and files as multipart/form-data. fields is
// marshalled to JSON first so its json tags name the form fields; scalars are
// written as their plain value and lists or objects as JSON text.
func EncodeMultipart(fields any, files []models.Attachment) (io.Reader, string, error) {
	values, err := formValues(fields)
	if err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, values[k]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", k, err)
		}
	}

	for _, f := range files {
		if !f.Present() {
			continue
		}
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %s: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", fmt.Errorf("failed to copy file %s: %w", f.FileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

func formValues(fields any) (map[string]string, error) {
	out := map[string]string{}
	if fields == nil {
		return out, nil
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode form fields: %w", err)
	}
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("form fields must encode to a JSON object: %w", err)
	}

	for k, v := range parsed {
		text := string(bytes.TrimSpace(v))
		switch {
		case text == "null":
			continue
		case len(text) > 0 && text[0] == '"':
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return nil, err
			}
			out[k] = s
		default:
			out[k] = text
		}
	}
	return out, nil
}

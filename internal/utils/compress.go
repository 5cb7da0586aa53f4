package utils

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// CompressJSON marshals v to JSON, gzips the result and returns it as a
// standard base64 string. Used to shrink large array snapshots before they
// are enqueued for upload.
func CompressJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error occurred during marshalling value for compression: %w", err)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err = gz.Write(raw); err != nil {
		return "", fmt.Errorf("error occurred during gzip write: %w", err)
	}
	if err = gz.Close(); err != nil {
		return "", fmt.Errorf("error occurred during gzip close: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecompressJSON reverses CompressJSON: base64-decode, gunzip, then
// unmarshal into out.
func DecompressJSON(encoded string, out any) error {
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("error occurred during base64 decode: %w", err)
	}

	gz, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return fmt.Errorf("error occurred during gzip reader init: %w", err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return fmt.Errorf("error occurred during gzip read: %w", err)
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error occurred during unmarshalling decompressed value: %w", err)
	}
	return nil
}

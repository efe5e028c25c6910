package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

var contentTypeFormats = map[string]string{
	"text/csv":            "CSV",
	"application/json":    "JSON",
	"application/jsonl":   "JSONL",
	"text/x-jsonl":        "JSONL",
	"application/x-jsonl": "JSONL",
	"application/parquet": "Parquet",
	"application/x-hdf":   "HDF5",
	"text/plain":          "TXT",
}

var extensionFormats = []struct {
	suffix string
	format string
}{
	{".csv", "CSV"},
	{".json", "JSON"},
	{".jsonl", "JSONL"},
	{".parquet", "Parquet"},
	{".hdf5", "HDF5"},
	{".h5", "HDF5"},
	{".txt", "TXT"},
}

// DetectFileFormat labels an uploaded file. A .jsonl extension wins over any
// declared content type; otherwise the content type is consulted, then the
// extension, defaulting to Custom.
func DetectFileFormat(fileName, contentType string) string {
	if strings.HasSuffix(strings.ToLower(fileName), ".jsonl") {
		return "JSONL"
	}

	if contentType != "" {
		if format, ok := contentTypeFormats[contentType]; ok {
			return format
		}
		return "Custom"
	}

	lower := strings.ToLower(fileName)
	for _, e := range extensionFormats {
		if strings.HasSuffix(lower, e.suffix) {
			return e.format
		}
	}

	return "Custom"
}

// ComputeDigest returns the lowercase hex SHA-256 of the content.
func ComputeDigest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// FallbackDigest is the synthetic digest used when the real content is not
// hashable (e.g. the upload could not be read back). Uploads must not fail
// just because hashing did.
func FallbackDigest(fileName string, size int64) string {
	return fmt.Sprintf("sha256:%s:%d", fileName, size)
}

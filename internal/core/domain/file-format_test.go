package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileFormat_JSONLExtensionWins(t *testing.T) {
	// .jsonl always wins, whatever the declared content type says.
	assert.Equal(t, "JSONL", DetectFileFormat("data.jsonl", "text/csv"))
	assert.Equal(t, "JSONL", DetectFileFormat("data.jsonl", ""))
	assert.Equal(t, "JSONL", DetectFileFormat("data.jsonl", "application/octet-stream"))
}

func TestDetectFileFormat_ContentType(t *testing.T) {
	assert.Equal(t, "CSV", DetectFileFormat("data.bin", "text/csv"))
	assert.Equal(t, "JSON", DetectFileFormat("data.bin", "application/json"))
	assert.Equal(t, "JSONL", DetectFileFormat("data.bin", "application/jsonlines"))
	assert.Equal(t, "Parquet", DetectFileFormat("data.bin", "application/parquet"))
	assert.Equal(t, "HDF5", DetectFileFormat("data.bin", "application/x-hdf"))
	assert.Equal(t, "TXT", DetectFileFormat("data.bin", "text/plain"))
}

func TestDetectFileFormat_UnknownContentType(t *testing.T) {
	assert.Equal(t, "Custom", DetectFileFormat("data.bin", "application/octet-stream"))
}

func TestDetectFileFormat_ExtensionFallback(t *testing.T) {
	assert.Equal(t, "CSV", DetectFileFormat("data.csv", ""))
	assert.Equal(t, "JSON", DetectFileFormat("data.json", ""))
	assert.Equal(t, "Parquet", DetectFileFormat("data.parquet", ""))
	assert.Equal(t, "HDF5", DetectFileFormat("data.h5", ""))
	assert.Equal(t, "TXT", DetectFileFormat("notes.txt", ""))
	assert.Equal(t, "Custom", DetectFileFormat("data.bin", ""))
}

func TestComputeDigest_Deterministic(t *testing.T) {
	content := []byte("hello world")

	first := ComputeDigest(content)
	second := ComputeDigest(content)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.Equal(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", first)
}

func TestFallbackDigest(t *testing.T) {
	assert.Equal(t, "sha256:data.csv:42", FallbackDigest("data.csv", 42))
}

package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mlops-hub-backend/internal/core/domain"
)

func draftVersion() *domain.DatasetVersion {
	return &domain.DatasetVersion{
		ID:            10,
		VersionID:     "v-uuid",
		DatasetID:     1,
		VersionNumber: 3,
		Status:        domain.VersionStatusDraft,
	}
}

func TestCreateVersionEndpoint(t *testing.T) {
	m, r := setupRouter()

	m.datasetRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Dataset{ID: 1, Name: "iris"}, nil)
	m.versionRepo.On("MaxVersionNumber", mock.Anything, int64(1)).Return(2, nil)
	m.versionRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.DatasetVersion")).Return(nil)

	req, _ := http.NewRequest("POST", "/api/datasets/1/versions?description=first+cut", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(3), resp["versionNumber"])
	assert.Equal(t, "DRAFT", resp["status"])
	assert.Equal(t, "first cut", resp["description"])
}

func TestCreateVersionEndpoint_DatasetMissing(t *testing.T) {
	m, r := setupRouter()

	m.datasetRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, domain.ErrDatasetNotFound)

	req, _ := http.NewRequest("POST", "/api/datasets/1/versions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Workflow endpoints report missing parents as a client error.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommitVersionEndpoint(t *testing.T) {
	m, r := setupRouter()

	m.versionRepo.On("GetByDatasetAndVersionID", mock.Anything, int64(1), "v-uuid").Return(draftVersion(), nil)
	m.versionRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.DatasetVersion")).Return(nil)

	req, _ := http.NewRequest("PUT", "/api/datasets/1/versions/v-uuid/commit", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "COMMITTED", resp["status"])
	assert.NotEmpty(t, resp["committedAt"])
}

func TestCommitVersionEndpoint_AlreadyCommitted(t *testing.T) {
	m, r := setupRouter()

	committed := draftVersion()
	committed.Status = domain.VersionStatusCommitted
	m.versionRepo.On("GetByDatasetAndVersionID", mock.Anything, int64(1), "v-uuid").Return(committed, nil)

	req, _ := http.NewRequest("PUT", "/api/datasets/1/versions/v-uuid/commit", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteVersionEndpoint_Committed(t *testing.T) {
	m, r := setupRouter()

	committed := draftVersion()
	committed.Status = domain.VersionStatusCommitted
	m.versionRepo.On("GetByDatasetAndVersionID", mock.Anything, int64(1), "v-uuid").Return(committed, nil)

	req, _ := http.NewRequest("DELETE", "/api/datasets/1/versions/v-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.versionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUploadFileEndpoint(t *testing.T) {
	m, r := setupRouter()

	m.versionRepo.On("GetByDatasetAndVersionID", mock.Anything, int64(1), "v-uuid").Return(draftVersion(), nil)
	m.store.On("Put", mock.Anything, "datasets/1/versions/v-uuid/data.csv", mock.Anything, mock.Anything).Return(nil)
	m.fileRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.DatasetFile")).Return(nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "data.csv")
	_, _ = part.Write([]byte("a,b\n1,2\n"))
	_ = mw.Close()

	req, _ := http.NewRequest("POST", "/api/datasets/1/versions/v-uuid/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "data.csv", resp["fileName"])
	assert.Equal(t, "CSV", resp["fileFormat"])
	assert.NotEmpty(t, resp["digest"])
}

func TestUploadFileEndpoint_MissingFile(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/datasets/1/versions/v-uuid/files", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadFileEndpoint_NonDraftVersion(t *testing.T) {
	m, r := setupRouter()

	committed := draftVersion()
	committed.Status = domain.VersionStatusCommitted
	m.versionRepo.On("GetByDatasetAndVersionID", mock.Anything, int64(1), "v-uuid").Return(committed, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "data.csv")
	_, _ = part.Write([]byte("a,b\n"))
	_ = mw.Close()

	req, _ := http.NewRequest("POST", "/api/datasets/1/versions/v-uuid/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDownloadFileEndpoint(t *testing.T) {
	m, r := setupRouter()

	file := &domain.DatasetFile{ID: 5, FileID: "f-uuid", VersionID: 10, FileName: "data.csv", FilePath: "datasets/1/versions/v-uuid/data.csv"}
	m.versionRepo.On("GetByDatasetAndVersionID", mock.Anything, int64(1), "v-uuid").Return(draftVersion(), nil)
	m.fileRepo.On("GetByVersionAndFileID", mock.Anything, int64(10), "f-uuid").Return(file, nil)
	m.store.On("Get", mock.Anything, file.FilePath).Return([]byte("a,b\n1,2\n"), nil)

	req, _ := http.NewRequest("GET", "/api/datasets/1/versions/v-uuid/files/f-uuid/download", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a,b\n1,2\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "data.csv")
}

func TestDownloadFileEndpoint_NotFound(t *testing.T) {
	m, r := setupRouter()

	m.versionRepo.On("GetByDatasetAndVersionID", mock.Anything, int64(1), "v-uuid").Return(draftVersion(), nil)
	m.fileRepo.On("GetByVersionAndFileID", mock.Anything, int64(10), "f-uuid").Return(nil, domain.ErrFileNotFound)

	req, _ := http.NewRequest("GET", "/api/datasets/1/versions/v-uuid/files/f-uuid/download", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Download endpoints keep the plain REST mapping.
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListVersionsEndpoint_ByNumber(t *testing.T) {
	m, r := setupRouter()

	m.versionRepo.On("GetByDatasetAndNumber", mock.Anything, int64(1), 2).Return(draftVersion(), nil)

	req, _ := http.NewRequest("GET", "/api/datasets/1/versions?versionNumber=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "v-uuid", resp["versionId"])
}

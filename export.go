package canvex

import "context"

// ExportRequest describes one export run.
type ExportRequest struct {
	APIBase string `json:"api_base"`
	Token   string `json:"token"`

	IncludeConcluded        bool `json:"include_concluded"`
	DownloadPageLinkedFiles bool `json:"download_page_linked_files"`
	DownloadAllFiles        bool `json:"download_all_files"`
}

// Validate returns an error if required fields are missing.
func (r *ExportRequest) Validate() error {
	if r.APIBase == "" || r.Token == "" {
		return Errorf(EINVALID, "api_base and token are required.")
	}
	return nil
}

// DownloadStatus classifies the outcome of one file download attempt.
type DownloadStatus string

// Download outcomes. A skipped download means the destination already
// existed; failures never abort the batch they belong to.
const (
	DownloadSaved   DownloadStatus = "saved"
	DownloadSkipped DownloadStatus = "skipped"
	DownloadFailed  DownloadStatus = "failed"
)

// DownloadResult records the outcome of downloading one attachment.
type DownloadResult struct {
	FileID int64          `json:"file_id"`
	Path   string         `json:"path"`
	Status DownloadStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
}

// ExportResult is the outcome of a completed export: the zip archive bytes,
// the manifest that was written into it, and the per-file download results.
type ExportResult struct {
	Archive   []byte
	Manifest  []ManifestEntry
	Downloads []DownloadResult
}

// ExportService runs a full course export.
type ExportService interface {
	// Export pulls all of the caller's courses, aggregates each one with
	// partial-failure capture, optionally downloads attachments, and
	// returns the zipped archive. It fails only when the course list
	// cannot be fetched or the archive cannot be assembled.
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

package domain

// EvidenceFile is one uploaded file as received from the HTTP layer.
type EvidenceFile struct {
	Name     string
	Size     int64
	MimeType string
	Data     []byte
}

type UploadResult struct {
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	MimeType string `json:"mime_type"`
}

// IntakeResult is the combined outcome of a report-with-analysis intake.
type IntakeResult struct {
	Accident         *Accident      `json:"accident"`
	DispatchResult   *DispatchResult `json:"dispatch_result"`
	UploadedEvidence []UploadResult `json:"uploaded_evidence"`
}

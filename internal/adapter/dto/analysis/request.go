package analysis

// UploadURLRequest asks for a presigned upload location
type UploadURLRequest struct {
	FileType    string `json:"file_type" validate:"required,oneof=video audio"`
	ContentType string `json:"content_type" validate:"omitempty,max=100"`
}

// AnalyzeStoredRequest analyzes media already uploaded through a presigned URL
type AnalyzeStoredRequest struct {
	FileKey string `json:"file_key" validate:"required,max=512"`
}

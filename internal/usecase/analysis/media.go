package analysis

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

const defaultExtension = "webm"

var faceDetectionFormats = map[string]struct{}{
	"mov": {}, "mp4": {}, "m4v": {}, "mpeg": {}, "avi": {},
}

var transcriptionFormats = map[string]struct{}{
	"mp3": {}, "mp4": {}, "mov": {}, "m4a": {}, "wav": {},
	"flac": {}, "webm": {}, "amr": {}, "ogg": {},
}

// FileExtension returns the lower-cased extension without the dot, defaulting to webm
func FileExtension(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	if ext == "" {
		return defaultExtension
	}
	return ext
}

// SupportsFaceDetection reports whether face detection can read the format
func SupportsFaceDetection(ext string) bool {
	_, ok := faceDetectionFormats[strings.ToLower(ext)]
	return ok
}

// SupportsTranscription reports whether transcription can read the format
func SupportsTranscription(ext string) bool {
	_, ok := transcriptionFormats[strings.ToLower(ext)]
	return ok
}

// IsMediaContentType accepts video/* and audio/* MIME types
func IsMediaContentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(ct, "video/") || strings.HasPrefix(ct, "audio/")
}

// InterviewObjectKey names a server-side upload: interviews/<uuid>.<ext>
func InterviewObjectKey(filename string) string {
	return "interviews/" + uuid.NewString() + "." + FileExtension(filename)
}

// UploadObjectKey names a client-side presigned upload: uploads/<file_type>/<uuid>.webm
func UploadObjectKey(fileType string) string {
	return "uploads/" + fileType + "/" + uuid.NewString() + "." + defaultExtension
}

package domain

// Settings is the singleton operational-limits document for file uploads.
type Settings struct {
	AllowedFileExtensions []string `json:"ALLOWED_FILE_EXTENSIONS"`
	MaxFileSize           int64    `json:"MAX_FILE_SIZE"`
}

// Hard ceilings every stored Settings document must respect, regardless of
// what an admin submits.
var (
	// KnownFileExtensions is the fixed allow-list admins may choose from.
	KnownFileExtensions = []string{
		".csv", ".doc", ".docx", ".jpg", ".jpeg", ".pdf", ".png", ".ppt", ".pptx", ".txt", ".xls",
	}
	// MaxFileSizeCeiling caps MAX_FILE_SIZE in bytes.
	MaxFileSizeCeiling int64 = 32000000
)

// DefaultSettings returns the settings used before an admin stores any.
func DefaultSettings() Settings {
	return Settings{
		AllowedFileExtensions: []string{".pdf"},
		MaxFileSize:           4000000,
	}
}

package walker

import (
	"path/filepath"
	"strings"
)

// Kinds accepted by the document backend.
const (
	KindPDF        = "pdf"
	KindWord       = "docx"
	KindPowerPoint = "pptx"
)

var extensionToKind = map[string]string{
	".pdf":  KindPDF,
	".docx": KindWord,
	".pptx": KindPowerPoint,
}

// SupportedExtensions lists the accepted extensions in display order.
var SupportedExtensions = []string{".pdf", ".docx", ".pptx"}

// DetectKind returns the document kind for filename, or "" when the backend
// would reject it.
func DetectKind(filename string) string {
	return extensionToKind[strings.ToLower(filepath.Ext(filename))]
}

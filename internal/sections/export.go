package sections

import "context"

// exportTypes are the section type tags the upstream export endpoint accepts.
var exportTypes = map[string]bool{
	"users":         true,
	"modes":         true,
	"conversations": true,
	"scripts":       true,
	"generations":   true,
}

func ValidExportType(t string) bool {
	return exportTypes[t]
}

// Export fetches the CSV blob for the given type tag.
func (s *Service) Export(ctx context.Context, exportType string) ([]byte, string, error) {
	return s.api.Export(ctx, exportType)
}

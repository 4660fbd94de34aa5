package cli

import (
	"github.com/ecattools/drivertable/internal/catalog"
	"github.com/ecattools/drivertable/internal/logger"
)

// loadCatalog returns the bundled driver catalog or, when --catalog was
// given, the one loaded from the file.
func loadCatalog() (*catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.Default(), nil
	}
	logger.Debug("Loading catalog from %s", catalogPath)
	return catalog.Load(catalogPath)
}

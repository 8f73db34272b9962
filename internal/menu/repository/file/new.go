package file

import (
	"fmt"

	"restaurant-ordering-assistant/internal/menu/repository"
	"restaurant-ordering-assistant/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
}

// New creates a Repository reading a JSON catalog from path.
func New(path string, l log.Logger) repository.Repository {
	return &implRepository{path: path, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("menu/repository/file.%s", method)
}

// Source returns the catalog path.
func (r *implRepository) Source() string {
	return r.path
}

package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

var _ repository.CartStore = (*FileStore)(nil)

// FileStore implementación de CartStore sobre un archivo JSON: una clave de
// sesión -> un documento con la colección completa. La escritura es archivo
// temporal + rename, así la copia durable siempre es la última colección
// comprometida completa, nunca una escritura a medias.
type FileStore struct {
	path string
}

// New construye el store para una clave de sesión dentro de dir.
func New(dir, sessionKey string) *FileStore {
	return &FileStore{path: filepath.Join(dir, sessionKey+".json")}
}

// Load lee la colección. Archivo inexistente = carrito vacío.
func (s *FileStore) Load() ([]entity.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []entity.CartItem{}, nil
		}
		return nil, fmt.Errorf("leer %s: %w", s.path, err)
	}
	var items []entity.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decodificar carrito: %w", err)
	}
	if items == nil {
		items = []entity.CartItem{}
	}
	return items, nil
}

// Save reemplaza la colección completa de forma atómica (tmp + rename).
func (s *FileStore) Save(items []entity.CartItem) error {
	if items == nil {
		items = []entity.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("codificar carrito: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".cart-*")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazar %s: %w", s.path, err)
	}
	return nil
}

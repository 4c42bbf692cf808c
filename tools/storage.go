package tools

import (
	"os"
	"path/filepath"
)

// Store archiva copias de los documentos generados. El colaborador real es un
// bucket de objetos; esta implementación local escribe bajo un directorio con
// el nombre del bucket configurado, detrás de la misma interfaz.
type Store interface {
	Save(name string, data []byte) (string, error)
	Open(name string) ([]byte, error)
}

type DiskStore struct {
	Root string
}

func NewStore() Store {
	return DiskStore{Root: conf.Storage.Bucket}
}

func (s DiskStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Root, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s DiskStore) Open(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Root, filepath.Base(name)))
}

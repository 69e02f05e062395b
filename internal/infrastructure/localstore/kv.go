// Package localstore implementa la persistencia local del sistema: un bucket
// clave-valor respaldado por un único archivo JSON, y sobre él el adaptador
// del puerto RecordStore. Es el análogo del almacenamiento clave-valor del
// navegador del sistema original: sin servidor, sin red, un solo proceso.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// KV bucket clave-valor respaldado por un archivo JSON
// (objeto plano clave -> valor serializado). Clave ausente no es error.
type KV struct {
	mu   sync.Mutex
	path string
}

// OpenKV crea el bucket sobre la ruta dada, creando el directorio si hace falta.
// El archivo se crea en la primera escritura.
func OpenKV(path string) (*KV, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
		}
	}
	return &KV{path: path}, nil
}

// Get devuelve el valor bajo key. El segundo retorno indica presencia:
// archivo inexistente o clave ausente devuelven (nil, false, nil).
func (k *KV) Get(key string) (json.RawMessage, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	bucket, err := k.read()
	if err != nil {
		return nil, false, err
	}
	v, ok := bucket[key]
	return v, ok, nil
}

// Set guarda el valor bajo key, reescribiendo el archivo completo.
// La escritura es atómica (archivo temporal + rename) para que un corte a
// mitad de escritura no deje el bucket corrupto.
func (k *KV) Set(key string, value json.RawMessage) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	bucket, err := k.read()
	if err != nil {
		return err
	}
	bucket[key] = value

	data, err := json.Marshal(bucket)
	if err != nil {
		return fmt.Errorf("localstore: serializar bucket: %w", err)
	}
	tmp := k.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, k.path); err != nil {
		return fmt.Errorf("localstore: reemplazar %s: %w", k.path, err)
	}
	return nil
}

func (k *KV) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("localstore: leer %s: %w", k.path, err)
	}
	bucket := map[string]json.RawMessage{}
	if len(data) == 0 {
		return bucket, nil
	}
	if err := json.Unmarshal(data, &bucket); err != nil {
		return nil, fmt.Errorf("localstore: bucket corrupto en %s: %w", k.path, err)
	}
	return bucket, nil
}

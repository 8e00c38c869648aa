package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileFingerprinter calcula um identificador determinístico do
// conteúdo dos arquivos de entrada. É a chave explícita da memoização
// do pipeline: mesma entrada, mesmo fingerprint, mesmo resultado.
type FileFingerprinter struct {
	paths []string
}

// NewFileFingerprinter cria um fingerprinter para os caminhos
// informados. A ordem dos caminhos participa do hash.
func NewFileFingerprinter(paths ...string) *FileFingerprinter {
	return &FileFingerprinter{paths: paths}
}

// Fingerprint devolve o SHA-256 em hexadecimal do conteúdo de todos os
// arquivos, na ordem configurada.
func (f *FileFingerprinter) Fingerprint() (string, error) {
	hash := sha256.New()

	for _, path := range f.paths {
		if err := hashFile(hash, path); err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

func hashFile(hash io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir %q para fingerprint", path)
	}
	defer file.Close()

	// O caminho entra no hash para distinguir trocas de arquivos entre si
	if _, err := hash.Write([]byte(path)); err != nil {
		return err
	}

	if _, err := io.Copy(hash, file); err != nil {
		return errors.Wrapf(err, "erro ao ler %q para fingerprint", path)
	}

	return nil
}

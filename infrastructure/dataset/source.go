package dataset

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Table é uma tabela tabular bruta lida de uma fonte nomeada, antes da
// tipagem das colunas.
type Table struct {
	Source  string
	Headers []string
	Rows    []map[string]string
}

// HasColumn verifica se a tabela possui a coluna informada.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Source fornece uma tabela bruta para o Loader.
type Source interface {
	Name() string
	Read() (*Table, error)
}

// CSVSource lê uma tabela de um arquivo CSV local com cabeçalho na
// primeira linha.
type CSVSource struct {
	name string
	path string
}

// NewCSVSource cria uma fonte CSV nomeada. O nome identifica a fonte
// em erros e, para fontes de marketing, vira a plataforma do registro.
func NewCSVSource(name, path string) *CSVSource {
	return &CSVSource{name: name, path: path}
}

// Name retorna o nome da fonte.
func (s *CSVSource) Name() string { return s.name }

// Path retorna o caminho do arquivo de origem.
func (s *CSVSource) Path() string { return s.path }

// Read carrega o arquivo inteiro em memória como linhas indexadas por
// cabeçalho. Cabeçalhos e valores são aparados de espaços.
func (s *CSVSource) Read() (*Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir a fonte %q", s.name)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a fonte %q", s.name)
	}

	if len(records) == 0 {
		return nil, &EmptyDatasetError{Source: s.name}
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	return &Table{Source: s.name, Headers: headers, Rows: rows}, nil
}

package analyzing

import "github.com/vfg2006/marketing-intelligence-api/internal/domain"

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// DatasetLoader carrega os conjuntos de dados tipados de entrada.
type DatasetLoader interface {
	Load() (*domain.Datasets, error)
}

// Analyzer executa o pipeline completo de preparação de dados.
type Analyzer interface {
	Analyze() (*domain.AnalysisResult, error)
}

// Fingerprinter identifica o conteúdo atual dos arquivos de entrada.
type Fingerprinter interface {
	Fingerprint() (string, error)
}

// Runner executa o pipeline, possivelmente reaproveitando um resultado
// memoizado. O booleano indica se o resultado veio do cache.
type Runner interface {
	Run() (*domain.AnalysisResult, bool, error)
}

// SnapshotWriter persiste os snapshots tabulares e o documento de
// insights produzidos por uma execução.
type SnapshotWriter interface {
	WriteAll(result *domain.AnalysisResult) error
}

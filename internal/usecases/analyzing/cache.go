package analyzing

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
)

// CachedRunner memoiza o resultado do pipeline usando o fingerprint do
// conteúdo dos arquivos de entrada como chave. O fingerprinter é um
// colaborador explícito passado na construção; nenhum estado global é
// consultado. Seguro para chamadas concorrentes.
type CachedRunner struct {
	analyzer      Analyzer
	fingerprinter Fingerprinter

	mu          sync.Mutex
	fingerprint string
	result      *domain.AnalysisResult
}

// NewCachedRunner cria o runner memoizado.
func NewCachedRunner(analyzer Analyzer, fingerprinter Fingerprinter) *CachedRunner {
	return &CachedRunner{
		analyzer:      analyzer,
		fingerprinter: fingerprinter,
	}
}

// Run devolve o resultado memoizado quando o fingerprint das entradas
// não mudou desde a última execução; caso contrário executa o pipeline
// e atualiza o cache. O booleano indica acerto de cache.
func (c *CachedRunner) Run() (*domain.AnalysisResult, bool, error) {
	fingerprint, err := c.fingerprinter.Fingerprint()
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.result != nil && c.fingerprint == fingerprint {
		logrus.WithField("fingerprint", fingerprint).Debug("Entradas inalteradas, reaproveitando resultado memoizado")
		return c.result, true, nil
	}

	result, err := c.analyzer.Analyze()
	if err != nil {
		return nil, false, err
	}

	c.fingerprint = fingerprint
	c.result = result

	return result, false, nil
}

// LastFingerprint devolve o fingerprint da última execução bem
// sucedida, ou vazio se o pipeline ainda não rodou.
func (c *CachedRunner) LastFingerprint() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fingerprint
}

package analyzing_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-intelligence-api/internal/domain"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-intelligence-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestCachedRunner_Run(t *testing.T) {
	t.Run("Fingerprint inalterado reaproveita o resultado memoizado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := mocks.NewMockAnalyzer(ctrl)
		fingerprinter := mocks.NewMockFingerprinter(ctrl)

		result := &domain.AnalysisResult{}
		fingerprinter.EXPECT().Fingerprint().Return("abc", nil).Times(2)
		analyzer.EXPECT().Analyze().Return(result, nil).Times(1)

		runner := analyzing.NewCachedRunner(analyzer, fingerprinter)

		first, cached, err := runner.Run()
		require.NoError(t, err)
		assert.False(t, cached)
		assert.Same(t, result, first)

		second, cached, err := runner.Run()
		require.NoError(t, err)
		assert.True(t, cached)
		assert.Same(t, result, second)
		assert.Equal(t, "abc", runner.LastFingerprint())
	})

	t.Run("Fingerprint alterado reexecuta o pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := mocks.NewMockAnalyzer(ctrl)
		fingerprinter := mocks.NewMockFingerprinter(ctrl)

		firstResult := &domain.AnalysisResult{}
		secondResult := &domain.AnalysisResult{}

		gomock.InOrder(
			fingerprinter.EXPECT().Fingerprint().Return("abc", nil),
			fingerprinter.EXPECT().Fingerprint().Return("def", nil),
		)
		gomock.InOrder(
			analyzer.EXPECT().Analyze().Return(firstResult, nil),
			analyzer.EXPECT().Analyze().Return(secondResult, nil),
		)

		runner := analyzing.NewCachedRunner(analyzer, fingerprinter)

		_, cached, err := runner.Run()
		require.NoError(t, err)
		assert.False(t, cached)

		result, cached, err := runner.Run()
		require.NoError(t, err)
		assert.False(t, cached)
		assert.Same(t, secondResult, result)
		assert.Equal(t, "def", runner.LastFingerprint())
	})

	t.Run("Erro de fingerprint impede a execução", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := mocks.NewMockAnalyzer(ctrl)
		fingerprinter := mocks.NewMockFingerprinter(ctrl)

		fingerprinter.EXPECT().Fingerprint().Return("", errors.New("arquivo ausente"))

		runner := analyzing.NewCachedRunner(analyzer, fingerprinter)

		result, cached, err := runner.Run()
		assert.Error(t, err)
		assert.False(t, cached)
		assert.Nil(t, result)
	})

	t.Run("Erro do pipeline não contamina o cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := mocks.NewMockAnalyzer(ctrl)
		fingerprinter := mocks.NewMockFingerprinter(ctrl)

		result := &domain.AnalysisResult{}
		fingerprinter.EXPECT().Fingerprint().Return("abc", nil).Times(2)
		gomock.InOrder(
			analyzer.EXPECT().Analyze().Return(nil, errors.New("coluna ausente")),
			analyzer.EXPECT().Analyze().Return(result, nil),
		)

		runner := analyzing.NewCachedRunner(analyzer, fingerprinter)

		_, _, err := runner.Run()
		require.Error(t, err)

		// A segunda chamada executa de novo, não devolve cache de erro
		got, cached, err := runner.Run()
		require.NoError(t, err)
		assert.False(t, cached)
		assert.Same(t, result, got)
	})
}

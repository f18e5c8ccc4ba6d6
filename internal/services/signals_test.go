package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience(t *testing.T) {
	extractor := NewSignalExtractor(nil)

	t.Run("maximum wins over sum", func(t *testing.T) {
		got := extractor.ExtractExperience("3 years, 5 years, 6 months")
		assert.Equal(t, 5.0, got)
	})

	t.Run("months convert to years", func(t *testing.T) {
		got := extractor.ExtractExperience("18 months")
		assert.Equal(t, 1.5, got)
	})

	t.Run("abbreviated units", func(t *testing.T) {
		assert.Equal(t, 4.0, extractor.ExtractExperience("4 yrs of practice"))
		assert.InDelta(t, 0.5, extractor.ExtractExperience("6 mos rotation"), 1e-9)
	})

	t.Run("no separator between number and unit", func(t *testing.T) {
		assert.Equal(t, 7.0, extractor.ExtractExperience("7years in cardiology"))
	})

	t.Run("no match yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, extractor.ExtractExperience("no durations here"))
	})

	t.Run("empty input yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, extractor.ExtractExperience(""))
	})
}

func TestExtractCertifications(t *testing.T) {
	extractor := NewSignalExtractor(nil)

	t.Run("vocabulary order regardless of appearance", func(t *testing.T) {
		got := extractor.ExtractCertifications("I have an MD and also FRCS and MBBS")
		assert.Equal(t, []string{"MBBS", "MD", "FRCS"}, got)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := extractor.ExtractCertifications("holds an mbbs and mrcp")
		assert.Equal(t, []string{"MBBS", "MRCP"}, got)
	})

	t.Run("empty input yields empty non-nil result", func(t *testing.T) {
		got := extractor.ExtractCertifications("")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("no match yields empty non-nil result", func(t *testing.T) {
		got := extractor.ExtractCertifications("software engineer resume")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("custom vocabulary keeps its order", func(t *testing.T) {
		custom := NewSignalExtractor([]string{"FRCS", "MD"})
		got := custom.ExtractCertifications("MD then FRCS")
		assert.Equal(t, []string{"FRCS", "MD"}, got)
	})
}

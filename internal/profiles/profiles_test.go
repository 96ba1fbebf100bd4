package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_KnownProfiles(t *testing.T) {
	tests := []struct {
		id          string
		maxWords    int
		maxAccepted int
		threshold   float64
		mode        StructureMode
	}{
		{Child, 10, 14, 0.9, StructureParagraph},
		{Standard, 14, 20, 0.93, StructureParagraph},
		{Neurodivergent, 9, 13, 0.9, StructureLineBreak},
		{Elderly, 12, 17, 0.92, StructureParagraph},
		{Academic, 18, 24, 0.96, StructureParagraph},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p := Get(tt.id)
			assert.Equal(t, tt.id, p.ID)
			assert.Equal(t, tt.maxWords, p.MaxWordsPerSentence)
			assert.Equal(t, tt.maxAccepted, p.MaxAcceptedWordsPerSentence)
			assert.InDelta(t, tt.threshold, p.SimilarityThreshold, 1e-9)
			assert.Equal(t, tt.mode, p.StructureMode)
			assert.NotEmpty(t, p.Label)
			assert.NotEmpty(t, p.Tone)
		})
	}
}

func TestGet_UnknownFallsBackToStandard(t *testing.T) {
	assert.Equal(t, Standard, Get("pirate").ID)
	assert.Equal(t, Standard, Get("").ID)
}

func TestGet_NormalizesID(t *testing.T) {
	assert.Equal(t, Child, Get("  CHILD ").ID)
	assert.True(t, IsKnown("Academic"))
	assert.False(t, IsKnown("teen"))
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	assert.Len(t, all, 5)
	all[0].MaxWordsPerSentence = 999

	assert.Equal(t, 10, Get(Child).MaxWordsPerSentence)
	assert.Equal(t, []string{Child, Standard, Neurodivergent, Elderly, Academic}, IDs())
}

func TestUsesExtraSimpleVocabulary(t *testing.T) {
	assert.True(t, Get(Child).UsesExtraSimpleVocabulary())
	assert.True(t, Get(Neurodivergent).UsesExtraSimpleVocabulary())
	assert.True(t, Get(Elderly).UsesExtraSimpleVocabulary())
	assert.False(t, Get(Standard).UsesExtraSimpleVocabulary())
	assert.False(t, Get(Academic).UsesExtraSimpleVocabulary())
}

package llm

import (
	"context"
	"testing"

	"fridgify/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubExtractCandidatesFromText(t *testing.T) {
	client := NewStubClient()

	candidates := client.ExtractCandidatesFromText(context.Background(), "milk 2 l, eggs, , tomato 500 g")

	require.Len(t, candidates, 3)

	assert.Equal(t, "milk", candidates[0].Name)
	require.NotNil(t, candidates[0].Quantity)
	assert.Equal(t, 2.0, *candidates[0].Quantity)
	assert.Equal(t, "l", candidates[0].Unit)
	assert.Equal(t, 0.5, candidates[0].Confidence)
	assert.Equal(t, domain.CandidateSourceText, candidates[0].Source)

	assert.Equal(t, "eggs", candidates[1].Name)
	assert.Nil(t, candidates[1].Quantity)

	assert.Equal(t, "tomato", candidates[2].Name)
	require.NotNil(t, candidates[2].Quantity)
	assert.Equal(t, 500.0, *candidates[2].Quantity)
	assert.Equal(t, "g", candidates[2].Unit)
}

func TestStubExtractCandidatesFromImages(t *testing.T) {
	client := NewStubClient()

	candidates := client.ExtractCandidatesFromImages(context.Background(), []string{"orange_juice.jpg", ".png"})

	require.Len(t, candidates, 2)

	assert.Equal(t, "orange juice", candidates[0].Name)
	assert.Equal(t, 0.4, candidates[0].Confidence)
	assert.Equal(t, domain.CandidateSourceImage, candidates[0].Source)

	assert.Equal(t, "unknown", candidates[1].Name)
}

func TestStubSuggestRecipes(t *testing.T) {
	client := NewStubClient()

	t.Run("uses at most three items", func(t *testing.T) {
		recipes := client.SuggestRecipes(context.Background(), []string{"milk", "eggs", "flour", "sugar"}, true)

		require.Len(t, recipes, 1)
		assert.Equal(t, "Quick mix with milk, eggs, flour", recipes[0].Title)
		assert.Equal(t, []string{"milk", "eggs", "flour"}, recipes[0].UseItems)
		assert.NotEmpty(t, recipes[0].Steps)
	})

	t.Run("empty fridge falls back", func(t *testing.T) {
		recipes := client.SuggestRecipes(context.Background(), nil, false)

		require.Len(t, recipes, 1)
		assert.Equal(t, "Simple pantry salad", recipes[0].Title)
		assert.Empty(t, recipes[0].UseItems)
	})
}

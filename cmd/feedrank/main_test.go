package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/feedrank/model"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRankCmd_PinnedCategories(t *testing.T) {
	out, err := runCLI(t, "rank", "--log-level", "error",
		"--categories", "positive,sexist,hate speech,not hate speech,positive",
		"one", "two", "three", "four", "five")
	require.NoError(t, err)

	assert.Contains(t, out, "Input Sentences")
	assert.Contains(t, out, "Reranked Sentences")
	assert.Contains(t, out, "Percentage of hateful content in reranked sentences: 40.00%")

	// Reranked table lists "five" (positive) before "three" (hate speech)
	reranked := out[strings.Index(out, "Reranked Sentences"):]
	assert.Less(t, strings.Index(reranked, "five"), strings.Index(reranked, "three"))
	assert.Less(t, strings.Index(reranked, "three"), strings.Index(reranked, "two"))
}

func TestRankCmd_NoRerank(t *testing.T) {
	out, err := runCLI(t, "rank", "--log-level", "error", "--seed", "3", "--no-rerank", "a", "b", "c", "d", "e")
	require.NoError(t, err)

	assert.Contains(t, out, "Input Sentences")
	assert.NotContains(t, out, "Reranked Sentences")
}

func TestRankCmd_WrongCount(t *testing.T) {
	_, err := runCLI(t, "rank", "--log-level", "error", "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 posts, got 2")
}

func TestRankCmd_PinnedCategoriesWrongCount(t *testing.T) {
	tests := []struct {
		name       string
		categories string
		want       string
	}{
		{name: "too few", categories: "sexist", want: "expected 5 categories, got 1"},
		{name: "too many", categories: "positive,positive,positive,positive,positive,sexist", want: "expected 5 categories, got 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "rank", "--log-level", "error",
				"--categories", tt.categories, "a", "b", "c", "d", "e")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "categories")
			assert.Contains(t, err.Error(), tt.want)
			assert.NotContains(t, out, "Input Sentences")
		})
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "feedrank dev")
}

func TestRenderDistribution(t *testing.T) {
	out := renderDistribution([]model.CategoryCount{
		{Category: model.CategoryPositive, Count: 2, Percentage: 40},
		{Category: model.CategorySexist, Count: 3, Percentage: 60},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 12, strings.Count(lines[0], "█"))
	assert.Contains(t, lines[1], "60.0%")
}

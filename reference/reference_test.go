package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDiseases_KeywordFilter(t *testing.T) {
	all := ListDiseases("")
	require.NotEmpty(t, all)

	matched := ListDiseases("RICE")
	require.NotEmpty(t, matched, "关键词匹配应不区分大小写")
	assert.Equal(t, "Rice Blast", matched[0].Name)

	assert.Empty(t, ListDiseases("no-such-disease"))
}

func TestListPesticides_CategoryAndKeywordFilter(t *testing.T) {
	all := ListPesticides("", "")
	require.NotEmpty(t, all)
	assert.Equal(t, all, ListPesticides("all", ""))

	fungicides := ListPesticides("Fungicide", "")
	require.NotEmpty(t, fungicides)
	for _, p := range fungicides {
		assert.Equal(t, "Fungicide", p.Category)
	}

	neem := ListPesticides("", "neem")
	require.Len(t, neem, 1)
	assert.Equal(t, "Neem Oil Concentrate", neem[0].Name)

	assert.Empty(t, ListPesticides("Herbicide", "neem"))
}

func TestListArticles_CategoryFilter(t *testing.T) {
	all := ListArticles("")
	require.NotEmpty(t, all)
	assert.Equal(t, all, ListArticles("all"))

	videos := ListArticles("video")
	require.NotEmpty(t, videos)
	for _, a := range videos {
		assert.Equal(t, "video", a.Category)
	}
}

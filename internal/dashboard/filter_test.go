package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studytrack/api/internal/app/models/dto"
)

func sampleRows() []dto.EnrichedSessionResponse {
	return []dto.EnrichedSessionResponse{
		{
			ID:      "a",
			Student: "Yasmine Berrada",
			Subject: "Algèbre",
			Mood:    "Motivé",
			Type:    "exercices",
			Tags:    []string{"revision", "examen"},
			Notes:   "Chapitre 2, séries",
		},
		{
			ID:      "b",
			Student: "Omar El Amrani",
			Subject: "Algèbre",
			Mood:    "Fatigué",
			Type:    "cours",
			Tags:    []string{"revision"},
			Notes:   "Cours magistral",
		},
		{
			ID:      "c",
			Student: "Yasmine Berrada",
			Subject: "Physique",
			Mood:    "Neutre",
			Type:    "quiz",
			Tags:    nil,
			Notes:   "",
		},
	}
}

func ids(rows []dto.EnrichedSessionResponse) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestApply_ZeroFilterReturnsEverything(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, []string{"a", "b", "c"}, ids(Apply(rows, Filter{})))
}

func TestApply_StudentIsExactMatch(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, []string{"a", "c"}, ids(Apply(rows, Filter{Student: "Yasmine Berrada"})))
	assert.Empty(t, Apply(rows, Filter{Student: "Yasmine"}), "student filter must not substring-match")
}

func TestApply_SubjectIsExactMatch(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, []string{"a", "b"}, ids(Apply(rows, Filter{Subject: "Algèbre"})))
}

func TestApply_TagMembership(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, []string{"a", "b"}, ids(Apply(rows, Filter{Tag: "revision"})))
	assert.Equal(t, []string{"a"}, ids(Apply(rows, Filter{Tag: "examen"})))
	assert.Empty(t, Apply(rows, Filter{Tag: "exam"}), "tag filter must not substring-match")
}

func TestApply_QueryIsCaseInsensitiveSubstring(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, []string{"a"}, ids(Apply(rows, Filter{Query: "CHAPITRE"})), "matches notes")
	assert.Equal(t, []string{"c"}, ids(Apply(rows, Filter{Query: "Quiz"})), "matches type")
	assert.Equal(t, []string{"b"}, ids(Apply(rows, Filter{Query: "fatigué"})), "matches mood")
	assert.Empty(t, Apply(rows, Filter{Query: "géométrie"}))
}

func TestApply_FieldsComposeWithAnd(t *testing.T) {
	rows := sampleRows()

	got := Apply(rows, Filter{Student: "Yasmine Berrada", Subject: "Algèbre"})
	assert.Equal(t, []string{"a"}, ids(got))

	got = Apply(rows, Filter{Subject: "Algèbre", Tag: "revision", Query: "cours"})
	assert.Equal(t, []string{"b"}, ids(got))

	assert.Empty(t, Apply(rows, Filter{Student: "Omar El Amrani", Subject: "Physique"}))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	_ = Apply(rows, Filter{Student: "Yasmine Berrada"})
	require.Equal(t, sampleRows(), rows)
}

func TestOptions_DistinctAndSorted(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, []string{"Omar El Amrani", "Yasmine Berrada"}, StudentOptions(rows))
	assert.Equal(t, []string{"Algèbre", "Physique"}, SubjectOptions(rows))
	assert.Equal(t, []string{"examen", "revision"}, TagOptions(rows))
}

func TestOptions_EmptyRows(t *testing.T) {
	assert.Empty(t, StudentOptions(nil))
	assert.Empty(t, TagOptions(nil))
}

package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcards(t *testing.T) {
	src := "# state capitals\nCapital of France?\tParis\n\nCapital of Japan?\tTokyo\n"

	qs, err := Flashcards(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "Capital of France?", qs[0].Question)
	assert.Equal(t, "Paris", qs[0].CorrectAnswer)
	assert.Equal(t, "Capital of Japan?", qs[1].Question)
	assert.NotEmpty(t, qs[0].ID, "converted records get generated IDs")
	assert.NotEqual(t, qs[0].ID, qs[1].ID)
}

func TestFlashcards_MissingTab(t *testing.T) {
	_, err := Flashcards(strings.NewReader("Capital of France? Paris\n"))

	var bad *ErrBadRecord
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, FormatFlashcards, bad.Format)
	assert.Equal(t, 1, bad.Line)
}

func TestFlashcards_ExtraTabsJoinAnswer(t *testing.T) {
	qs, err := Flashcards(strings.NewReader("Largest planet?\tJupiter\tby far\n"))
	require.NoError(t, err)
	assert.Equal(t, "Jupiter\tby far", qs[0].CorrectAnswer)
}

func TestCSV(t *testing.T) {
	src := `id,question,options,correctAnswer,category,points
q1,What is 2+2?,3|4|5,4,math,5
,What is 3+3?,5|6,6,math,
`

	qs, err := CSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "q1", qs[0].ID)
	assert.Equal(t, "What is 2+2?", qs[0].Question)
	assert.Equal(t, []string{"3", "4", "5"}, qs[0].Options)
	assert.Equal(t, "4", qs[0].CorrectAnswer)
	assert.Equal(t, "math", qs[0].Category)
	assert.Equal(t, "5", qs[0].Extra["points"], "unrecognized columns become extra fields")

	assert.NotEmpty(t, qs[1].ID, "rows without an id get a generated one")
	assert.Nil(t, qs[1].Extra["points"], "empty cells are skipped")
}

func TestCSV_MissingQuestionColumn(t *testing.T) {
	_, err := CSV(strings.NewReader("id,answer\nq1,4\n"))

	var bad *ErrBadRecord
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, FormatCSV, bad.Format)
}

func TestCSV_EmptyQuestionCell(t *testing.T) {
	_, err := CSV(strings.NewReader("question,correctAnswer\n,4\n"))

	var bad *ErrBadRecord
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 2, bad.Line)
}

func TestLinePairs(t *testing.T) {
	src := "Capital of France?\nParis\n\nCapital of Japan?\nTokyo\n"

	qs, err := LinePairs(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Capital of France?", qs[0].Question)
	assert.Equal(t, "Paris", qs[0].CorrectAnswer)
	assert.Equal(t, "Tokyo", qs[1].CorrectAnswer)
}

func TestLinePairs_UnpairedQuestion(t *testing.T) {
	_, err := LinePairs(strings.NewReader("Capital of France?\nParis\nCapital of Japan?\n"))

	var bad *ErrBadRecord
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, FormatLinePairs, bad.Format)
	assert.Equal(t, 3, bad.Line)
}

func TestConvert_Dispatch(t *testing.T) {
	qs, err := Convert(FormatFlashcards, strings.NewReader("Q?\tA\n"))
	require.NoError(t, err)
	assert.Len(t, qs, 1)

	_, err = Convert(Format("xml"), strings.NewReader(""))
	require.Error(t, err)
}

func TestFormatForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Format
		ok   bool
	}{
		{".tsv", FormatFlashcards, true},
		{"tab", FormatFlashcards, true},
		{".csv", FormatCSV, true},
		{".txt", FormatLinePairs, true},
		{".json", "", false},
	}
	for _, tt := range tests {
		got, ok := FormatForExtension(tt.ext)
		assert.Equal(t, tt.ok, ok, tt.ext)
		assert.Equal(t, tt.want, got, tt.ext)
	}
}

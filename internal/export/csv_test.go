package export_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"kud-club-backend/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name string
	Note string
}

func TestCSV(t *testing.T) {
	t.Run("QuotingRoundTrip", func(t *testing.T) {
		items := []record{
			{Name: "Plain", Note: "no special characters"},
			{Name: "Comma, Inc.", Note: `says "hello"`},
			{Name: "Multi", Note: "line one\nline two"},
		}

		var buf bytes.Buffer
		err := export.CSV(&buf, items, []string{"Name", "Note"}, func(r record) []string {
			return []string{r.Name, r.Note}
		})
		require.NoError(t, err)

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, []string{"Name", "Note"}, rows[0])
		assert.Equal(t, []string{"Comma, Inc.", `says "hello"`}, rows[2])
		assert.Equal(t, []string{"Multi", "line one\nline two"}, rows[3])
	})

	t.Run("EmptyInput", func(t *testing.T) {
		var buf bytes.Buffer
		err := export.CSV(&buf, []record{}, []string{"Name"}, func(r record) []string { return []string{r.Name} })
		assert.ErrorIs(t, err, export.ErrNoData)
		assert.Zero(t, buf.Len())
	})

	t.Run("ArityMismatch", func(t *testing.T) {
		var buf bytes.Buffer
		err := export.CSV(&buf, []record{{Name: "x"}}, []string{"A", "B"}, func(r record) []string {
			return []string{r.Name}
		})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, export.ErrNoData)
	})
}

func TestCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.csv")
	items := []record{{Name: "Mila", Note: "trainer"}}

	err := export.CSVFile(path, items, []string{"Name", "Note"}, func(r record) []string {
		return []string{r.Name, r.Note}
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name,Note\nMila,trainer\n", string(data))
}

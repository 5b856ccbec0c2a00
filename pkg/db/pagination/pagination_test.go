package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	encoded, err := EncodeCursor(Cursor{Date: "2026-03-10", ID: "42"})
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := DecodeCursor(encoded)
	require.NoError(t, err)
	require.Equal(t, "2026-03-10", decoded.Date)
	require.Equal(t, "42", decoded.ID)

	_, err = DecodeCursor("not base64!!!")
	require.Error(t, err)
}

type row struct {
	Date string
	ID   string
}

func cursorOf(r *row) Cursor {
	return Cursor{Date: r.Date, ID: r.ID}
}

func TestBuildCursorPageInfo(t *testing.T) {
	rows := []*row{
		{Date: "2026-03-12", ID: "c"},
		{Date: "2026-03-11", ID: "b"},
		{Date: "2026-03-10", ID: "a"},
	}

	t.Run("overfetched page is trimmed", func(t *testing.T) {
		page, info := BuildCursorPageInfo(rows, 2, cursorOf)
		require.Len(t, page, 2)
		require.True(t, info.HasMore)

		cursor, err := DecodeCursor(info.NextCursor)
		require.NoError(t, err)
		require.Equal(t, "b", cursor.ID)
	})

	t.Run("short page", func(t *testing.T) {
		page, info := BuildCursorPageInfo(rows, 5, cursorOf)
		require.Len(t, page, 3)
		require.False(t, info.HasMore)
		require.NotEmpty(t, info.NextCursor)
	})

	t.Run("empty page", func(t *testing.T) {
		page, info := BuildCursorPageInfo(nil, 5, cursorOf)
		require.Empty(t, page)
		require.False(t, info.HasMore)
		require.Empty(t, info.NextCursor)
	})
}

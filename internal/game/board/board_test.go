package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBoardFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, `{
		"squares": [
			{ "type": "OTHER", "propertyName": "GO" },
			{ "type": "PROPERTY", "propertyName": "Gdynia", "price": 60, "rent": 2, "mortgage": 30, "unmortgage": 33 },
			{ "type": "PROPERTY", "propertyName": "Taipei", "price": 60, "rent": 4, "mortgage": 30, "unmortgage": 33 }
		]
	}`)

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())

	// IDs follow array order
	assert.Equal(t, 0, b.Squares[0].ID)
	assert.Equal(t, 2, b.Squares[2].ID)

	assert.Equal(t, SquareOther, b.Squares[0].Type)
	assert.Equal(t, SquareProperty, b.Squares[1].Type)
	assert.Equal(t, "Gdynia", b.Squares[1].Name)
	assert.Equal(t, 60, b.Squares[1].Price)
	assert.Equal(t, 30, b.Squares[1].Mortgage)
	assert.Equal(t, 33, b.Squares[1].Unmortgage)
	assert.Empty(t, b.Squares[1].Owner)
	assert.False(t, b.Squares[1].IsMortgaged)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	b, err := Load("/nonexistent/board.json")
	assert.Error(t, err)
	assert.Nil(t, b)
}

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, `{"squares": []}`)
	b, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, b)
}

func TestLoad_PropertyWithoutPrice(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, `{"squares": [{ "type": "PROPERTY", "propertyName": "Broken" }]}`)
	b, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, b)
}

func TestLoad_ShippedBoard(t *testing.T) {
	t.Parallel()

	b, err := Load("../../../data/board.json")
	require.NoError(t, err)
	assert.Equal(t, 40, b.Size())

	for _, sq := range b.Squares {
		if sq.Type != SquareProperty {
			continue
		}
		assert.Positive(t, sq.Price, "square %d", sq.ID)
		assert.Positive(t, sq.Rent, "square %d", sq.ID)
		assert.Equal(t, sq.Price/2, sq.Mortgage, "square %d", sq.ID)
		assert.Greater(t, sq.Unmortgage, sq.Mortgage, "square %d", sq.ID)
		assert.Empty(t, sq.Owner, "square %d", sq.ID)
	}
}

func TestCopy_IsDeep(t *testing.T) {
	t.Parallel()

	path := writeBoardFile(t, `{
		"squares": [
			{ "type": "PROPERTY", "propertyName": "Gdynia", "price": 60, "rent": 2, "mortgage": 30, "unmortgage": 33 }
		]
	}`)
	b, err := Load(path)
	require.NoError(t, err)

	squares := b.Copy()
	squares[0].Owner = "alice"
	squares[0].IsMortgaged = true

	// template must stay pristine
	assert.Empty(t, b.Squares[0].Owner)
	assert.False(t, b.Squares[0].IsMortgaged)
}

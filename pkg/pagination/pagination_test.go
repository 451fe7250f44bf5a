package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsValidate(t *testing.T) {
	params := &PaginationParams{Page: 0, PerPage: -5}
	params.Validate()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 15, params.PerPage)

	params = &PaginationParams{Page: 3, PerPage: 500}
	params.Validate()
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 100, params.PerPage)
}

func TestPaginationParamsOffset(t *testing.T) {
	params := &PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, params.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)
	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = NewPagination(1, 10, 5)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 7, 21, 17, 23, 0, 0, time.UTC)
	encoded := EncodeCursor("some-id", createdAt)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	assert.NoError(t, err)
	assert.Equal(t, "some-id", cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(createdAt))
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	params := &CursorParams{Cursor: "%%%not-base64%%%"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)

	params = &CursorParams{}
	cursor, err := params.DecodeCursor()
	assert.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestNewCursorPaginationDetectsMore(t *testing.T) {
	type row struct {
		ID        string
		CreatedAt time.Time
	}

	// limit+1 rows fetched means there is a next page
	rows := []row{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	pagination, items := NewCursorPagination(rows, 2,
		func(r row) string { return r.ID },
		func(r row) time.Time { return r.CreatedAt },
	)
	assert.True(t, pagination.HasNext)
	assert.Len(t, items, 2)
	assert.NotNil(t, pagination.NextCursor)

	rows = []row{{ID: "a"}}
	pagination, items = NewCursorPagination(rows, 2,
		func(r row) string { return r.ID },
		func(r row) time.Time { return r.CreatedAt },
	)
	assert.False(t, pagination.HasNext)
	assert.Len(t, items, 1)
}

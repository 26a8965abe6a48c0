package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationFromQuery_Defaults(t *testing.T) {
	p := PaginationFromQuery(url.Values{})

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 10, p.Limit())
}

func TestPaginationFromQuery_ReadsParams(t *testing.T) {
	q := url.Values{}
	q.Set("num_page", "3")
	q.Set("limit", "5")

	p := PaginationFromQuery(q)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 5, p.PerPage)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 5, p.Limit())
}

func TestPaginationFromQuery_CapsLimit(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "100")

	p := PaginationFromQuery(q)

	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 10, p.Limit())
}

func TestPaginationFromQuery_IgnoresGarbage(t *testing.T) {
	q := url.Values{}
	q.Set("num_page", "zero")
	q.Set("limit", "-4")

	p := PaginationFromQuery(q)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
}

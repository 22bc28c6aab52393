package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Defaults(t *testing.T) {
	opts := Parse("", "")

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, DefaultPageSize, opts.PageSize)
}

func TestParse_Clamping(t *testing.T) {
	tests := []struct {
		name         string
		page         string
		pageSize     string
		wantPage     int
		wantPageSize int
	}{
		{name: "zero page clamps to one", page: "0", pageSize: "", wantPage: 1, wantPageSize: 10},
		{name: "negative page clamps to one", page: "-3", pageSize: "", wantPage: 1, wantPageSize: 10},
		{name: "oversized pageSize clamps to max", page: "", pageSize: "500", wantPage: 1, wantPageSize: 100},
		{name: "zero pageSize clamps to one", page: "", pageSize: "0", wantPage: 1, wantPageSize: 1},
		{name: "non-numeric page falls back", page: "abc", pageSize: "", wantPage: 1, wantPageSize: 10},
		{name: "non-numeric pageSize falls back", page: "", pageSize: "lots", wantPage: 1, wantPageSize: 10},
		{name: "valid values pass through", page: "3", pageSize: "25", wantPage: 3, wantPageSize: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Parse(tt.page, tt.pageSize)

			assert.Equal(t, tt.wantPage, opts.Page)
			assert.Equal(t, tt.wantPageSize, opts.PageSize)
		})
	}
}

func TestOptions_Offset(t *testing.T) {
	assert.Equal(t, 0, Options{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, Options{Page: 2, PageSize: 10}.Offset())
	assert.Equal(t, 50, Options{Page: 3, PageSize: 25}.Offset())
}

func TestNew_TotalPages(t *testing.T) {
	empty := New(0, Options{Page: 1, PageSize: 10})
	assert.Equal(t, int64(0), empty.TotalPages)
	assert.Equal(t, int64(0), empty.Total)

	partial := New(25, Options{Page: 2, PageSize: 10})
	assert.Equal(t, int64(3), partial.TotalPages)
	assert.Equal(t, 2, partial.Page)
	assert.Equal(t, 10, partial.PageSize)

	exact := New(30, Options{Page: 1, PageSize: 10})
	assert.Equal(t, int64(3), exact.TotalPages)

	single := New(1, Options{Page: 1, PageSize: 10})
	assert.Equal(t, int64(1), single.TotalPages)
}

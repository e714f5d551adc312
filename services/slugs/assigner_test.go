package slugs

import (
	"context"
	"testing"
	"time"

	"barmaja/apperr"
	"barmaja/models"
	"barmaja/testutil"

	"github.com/jpillora/backoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAssign(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		title string
		taken []string
		want  string
	}{
		{"empty scope", "Hello World!", nil, "hello-world"},
		{"base taken", "Hello World!", []string{"hello-world"}, "hello-world-1"},
		{"suffixes ascend", "Hello World!", []string{"hello-world", "hello-world-1", "hello-world-2"}, "hello-world-3"},
		{"gap is not filled before base", "Hello World!", []string{"hello-world-1"}, "hello-world"},
		{"first free suffix", "Hello World!", []string{"hello-world", "hello-world-2"}, "hello-world-1"},
		{
			"long title",
			"The Future of JavaScript: What to Expect in 2025",
			[]string{"the-future-of-javascript-what-to-expect-in-2025"},
			"the-future-of-javascript-what-to-expect-in-2025-1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Assign(ctx, "post", tt.title, NewSetScope(tt.taken...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignIsIdempotent(t *testing.T) {
	ctx := context.Background()
	scope := NewSetScope("go-basics", "go-basics-1")
	first, err := Assign(ctx, "course", "Go Basics", scope)
	require.NoError(t, err)
	second, err := Assign(ctx, "course", "Go Basics", scope)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "go-basics-2", first)
}

func TestTableScopeExcludesOwnRow(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, db, "go-basics", 0, true)

	taken, err := TableScope{DB: db, Table: "courses"}.Exists(ctx, "go-basics")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = TableScope{DB: db, Table: "courses", ExcludeID: course.ID}.Exists(ctx, "go-basics")
	require.NoError(t, err)
	assert.False(t, taken)

	slug, err := Assign(ctx, "course", "Go Basics", TableScope{DB: db, Table: "courses", ExcludeID: course.ID})
	require.NoError(t, err)
	assert.Equal(t, "go-basics", slug)
}

func fastWriter(db *gorm.DB) *Writer {
	w := NewWriter(db, "course", "courses")
	w.Backoff = &backoff.Backoff{Min: time.Millisecond, Max: 2 * time.Millisecond}
	return w
}

func TestWriterSuffixesDuplicates(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	w := fastWriter(db)

	create := func(tx *gorm.DB, slug string) error {
		return tx.Create(&models.Course{TitleEn: "Go Basics", TitleAr: "أساسيات", Slug: slug}).Error
	}
	first, err := w.Write(ctx, "Go Basics", 0, create)
	require.NoError(t, err)
	second, err := w.Write(ctx, "Go Basics", 0, create)
	require.NoError(t, err)

	assert.Equal(t, "go-basics", first)
	assert.Equal(t, "go-basics-1", second)
}

func TestWriterRetriesOnceOnConflict(t *testing.T) {
	db := testutil.DB(t)
	w := fastWriter(db)

	calls := 0
	slug, err := w.Write(context.Background(), "Go Basics", 0, func(tx *gorm.DB, slug string) error {
		calls++
		if calls == 1 {
			return gorm.ErrDuplicatedKey
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "go-basics", slug)
}

func TestWriterGivesUpAfterSecondConflict(t *testing.T) {
	db := testutil.DB(t)
	w := fastWriter(db)

	calls := 0
	_, err := w.Write(context.Background(), "Go Basics", 0, func(tx *gorm.DB, slug string) error {
		calls++
		return gorm.ErrDuplicatedKey
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, ErrSlugTaken)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"perpusku_backend/internals/constants"
	categoryModel "perpusku_backend/internals/features/library/book_category/model"
	helper "perpusku_backend/internals/helpers"
)

var categoryListSpec = ListSpec{
	SearchColumns: []string{"book_category_name", "book_category_description"},
	SortColumns: map[string]string{
		"name":       "book_category_name",
		"created_at": "created_at",
	},
	DefaultOrder: "book_category_name ASC",
	AccessColumn: "book_category_access_level",
}

func newListTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&categoryModel.BookCategoryModel{}))

	for _, c := range []categoryModel.BookCategoryModel{
		{Name: "Science", AccessLevel: 10},
		{Name: "History", AccessLevel: 10},
		{Name: "Staff Picks", AccessLevel: 2},
		{Name: "Science Fiction", AccessLevel: 10},
	} {
		require.NoError(t, db.Create(&c).Error)
	}
	return db
}

func TestList_SearchIsCaseInsensitive(t *testing.T) {
	db := newListTestDB(t)

	rows, total, err := List[categoryModel.BookCategoryModel](db, categoryListSpec, ListParams{
		Search:        "SCIEN",
		CallerRoleNum: constants.RoleSerialMember,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "Science", rows[0].Name)
	assert.Equal(t, "Science Fiction", rows[1].Name)
}

func TestList_ClearanceFloorHidesRestrictedRows(t *testing.T) {
	db := newListTestDB(t)

	// member (role 3) only sees rows whose access level is >= 3
	_, total, err := List[categoryModel.BookCategoryModel](db, categoryListSpec, ListParams{
		CallerRoleNum: constants.RoleSerialMember,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	// librarian (role 2) sees the restricted row too
	_, total, err = List[categoryModel.BookCategoryModel](db, categoryListSpec, ListParams{
		CallerRoleNum: constants.RoleSerialLibrarian,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestList_SortWhitelist(t *testing.T) {
	db := newListTestDB(t)

	rows, _, err := List[categoryModel.BookCategoryModel](db, categoryListSpec, ListParams{
		SortKey:       "name",
		SortOrder:     "desc",
		CallerRoleNum: constants.RoleSerialAdmin,
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Staff Picks", rows[0].Name)

	// unknown sort key falls back to the default order
	rows, _, err = List[categoryModel.BookCategoryModel](db, categoryListSpec, ListParams{
		SortKey:       "book_category_name; DROP TABLE book_categories",
		CallerRoleNum: constants.RoleSerialAdmin,
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "History", rows[0].Name)
}

func TestList_PagingAppliesOnlyWhenEnabled(t *testing.T) {
	db := newListTestDB(t)

	paged, total, err := List[categoryModel.BookCategoryModel](db, categoryListSpec, ListParams{
		Paging:        helper.Paging{Page: 2, PerPage: 2, Offset: 2, Limit: 2, Enabled: true},
		CallerRoleNum: constants.RoleSerialAdmin,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total, "total counts the filtered set, not the page")
	assert.Len(t, paged, 2)

	all, total, err := List[categoryModel.BookCategoryModel](db, categoryListSpec, ListParams{
		Paging:        helper.Paging{},
		CallerRoleNum: constants.RoleSerialAdmin,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, all, 4, "disabled paging returns the whole filtered set")
}

// file: internals/repository/list.go
package repository

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "perpusku_backend/internals/helpers"
)

/* =========================================================
   Generic filtered list over any entity table.

   Every catalog-style endpoint shares the same behavior:
   case-insensitive substring search over a fixed column set,
   clearance floor on access_level, whitelisted single-column
   sort and offset/limit paging that is skipped entirely when
   page or size is not a valid positive number.
   ========================================================= */

// ListSpec is the per-entity configuration, declared once next to the model.
type ListSpec struct {
	SearchColumns []string          // columns matched with LOWER(col) LIKE %q%
	SortColumns   map[string]string // sort key → column, whitelist
	DefaultOrder  string            // raw order clause when no sort key given, may be ""
	AccessColumn  string            // access-level column; "" disables the clearance filter
	Preloads      []string
}

// ListParams carries the caller's query. CallerRoleNum is the clearance level
// of the resolved identity (lower number = broader visibility).
type ListParams struct {
	Search        string
	SortKey       string
	SortOrder     string // asc|desc
	Paging        helper.Paging
	CallerRoleNum int
}

// ParseListParams reads q / sort_by / order (alias sort) / page / per_page.
func ParseListParams(c *fiber.Ctx, actor helper.AuthUser) ListParams {
	order := strings.ToLower(strings.TrimSpace(c.Query("order")))
	if order == "" {
		order = strings.ToLower(strings.TrimSpace(c.Query("sort")))
	}
	if order != "asc" && order != "desc" {
		order = ""
	}
	return ListParams{
		Search:        strings.TrimSpace(c.Query("q")),
		SortKey:       strings.TrimSpace(c.Query("sort_by")),
		SortOrder:     order,
		Paging:        helper.ResolvePaging(c, 0),
		CallerRoleNum: actor.RoleNum,
	}
}

// List runs the filtered query and returns the page plus the filtered total.
func List[T any](db *gorm.DB, spec ListSpec, p ListParams) ([]T, int64, error) {
	q := db.Model(new(T))

	if spec.AccessColumn != "" {
		// rows at or above the caller's clearance floor are visible;
		// see helper.HasClearance for the direction of this comparison
		q = q.Where(spec.AccessColumn+" >= ?", p.CallerRoleNum)
	}

	if p.Search != "" && len(spec.SearchColumns) > 0 {
		pattern := "%" + strings.ToLower(p.Search) + "%"
		conds := make([]string, 0, len(spec.SearchColumns))
		args := make([]any, 0, len(spec.SearchColumns))
		for _, col := range spec.SearchColumns {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if col, ok := spec.SortColumns[p.SortKey]; ok {
		dir := "ASC"
		if p.SortOrder == "desc" {
			dir = "DESC"
		}
		q = q.Order(col + " " + dir)
	} else if spec.DefaultOrder != "" {
		q = q.Order(spec.DefaultOrder)
	}
	// no sort key and no default: leave store order untouched

	if p.Paging.Enabled {
		q = q.Offset(p.Paging.Offset).Limit(p.Paging.Limit)
	}

	for _, preload := range spec.Preloads {
		q = q.Preload(preload)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

package database

import "gorm.io/gorm"

type Pagination struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	LastPage int   `json:"last_page"`
}

// Paginate counts q, then loads one page of it into dest with the given
// preloads. Pages start at 1; out of range values are clamped.
func Paginate(q *gorm.DB, page, limit int, dest interface{}, preloads ...string) (Pagination, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	p := Pagination{Page: page, Limit: limit}
	if err := q.Session(&gorm.Session{}).Count(&p.Total).Error; err != nil {
		return p, err
	}
	p.LastPage = int((p.Total + int64(limit) - 1) / int64(limit))
	if p.LastPage == 0 {
		p.LastPage = 1
	}

	find := q.Session(&gorm.Session{})
	for _, preload := range preloads {
		find = find.Preload(preload)
	}
	err := find.Offset((page - 1) * limit).Limit(limit).Find(dest).Error
	return p, err
}

package vacsrvc

import "math"

const perPageLimit = 40

// clampPaging converts a 1-based page and requested page size to a
// limit/offset pair. Both are clamped against the per-page ceiling and the
// int32-safe bound the database drivers expect.
func clampPaging(page int, perPage int) (limit int, offset int, err error) {
	if page < 1 {
		return 0, 0, ErrPageNotFound()
	}
	if perPage < 1 {
		return 0, 0, ErrInvalidPerPage()
	}

	limit = min(perPage, perPageLimit, math.MaxInt32-1)
	offset = min((page-1)*limit, math.MaxInt32-1)
	return limit, offset, nil
}

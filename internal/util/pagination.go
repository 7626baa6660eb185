package util

const DefaultPageSize = 10

// Calculate clamps page/limit and returns the offset to query with.
func Calculate(page, limit int) (offset, size int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = DefaultPageSize
	}
	return (page - 1) * limit, limit
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

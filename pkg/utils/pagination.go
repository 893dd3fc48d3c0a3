package utils

import "math"

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	return (ClampPage(page, perPage) - 1) * perPage
}

// NormalizePage clamps page ke minimal 1
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampPage menjaga (page-1)*perPage tetap muat di int, page dari query tidak dibatasi
func ClampPage(page, perPage int) int {
	page = NormalizePage(page)
	if perPage < 1 {
		return page
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt/perPage + 1
	}
	return page
}

package service

import "github.com/zizouhuweidi/trivia/internal/domain"

// DefaultPageSize is the number of questions per page
const DefaultPageSize = 10

// Paginate returns the 1-indexed page of all. Out of range pages, including
// page <= 0, yield an empty slice.
func Paginate(all []domain.Question, page, pageSize int) []domain.Question {
	if page <= 0 || pageSize <= 0 {
		return []domain.Question{}
	}

	// Compare page counts before multiplying so huge pages cannot overflow.
	pages := len(all) / pageSize
	if len(all)%pageSize != 0 {
		pages++
	}
	if page > pages {
		return []domain.Question{}
	}

	start := (page - 1) * pageSize

	end := len(all)
	if pageSize < end-start {
		end = start + pageSize
	}

	return all[start:end]
}

package pipeline

// Paginate returns the 1-based page of the given size from items.
// An out-of-range page (including page < 1) yields an empty slice; the
// function never errors. Callers are responsible for clamping the page
// number to [1, TotalPages] before display.
//
// Page reset is a caller contract, not a property of this function: whenever
// the filtered/sorted input identity changes because of a new filter or sort
// selection, the consumer must request page 1 again.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize < 1 || page < 1 {
		return []T{}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages computes ceil(totalItems / pageSize).
// Returns 0 for an empty list or a non-positive page size.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize < 1 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

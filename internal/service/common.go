package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const timestampLayout = time.RFC3339

// notFound maps a missing record to sentinel and wraps anything else
func notFound(err error, sentinel error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// pageBounds normalizes a 1-based page number to limit/offset
func pageBounds(page, pageSize int) (int, int, int) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page < 1 {
		page = 1
	}
	return page, pageSize, (page - 1) * pageSize
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

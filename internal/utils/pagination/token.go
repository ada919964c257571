package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor identifies a position in a chronologically ordered transaction list.
type Cursor struct {
	TransactionDate time.Time
	CreatedAt       time.Time
	TransactionID   string
}

// EncodeToken creates a base64 encoded token from a cursor.
func EncodeToken(c Cursor) string {
	tokenStr := strings.Join([]string{
		c.TransactionDate.Format(timeFormat),
		c.CreatedAt.Format(timeFormat),
		c.TransactionID,
	}, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	transactionDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (transaction date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{TransactionDate: transactionDate, CreatedAt: createdAt, TransactionID: parts[2]}, nil
}

// Before reports whether c sorts strictly before other in chronological order.
func (c Cursor) Before(other Cursor) bool {
	if !c.TransactionDate.Equal(other.TransactionDate) {
		return c.TransactionDate.Before(other.TransactionDate)
	}
	if !c.CreatedAt.Equal(other.CreatedAt) {
		return c.CreatedAt.Before(other.CreatedAt)
	}
	return c.TransactionID < other.TransactionID
}

// PageNewestFirst returns the next page of a newest-first list. cursorOf extracts
// the ordering key of an element. The returned token is nil on the last page.
func PageNewestFirst[T any](items []T, cursorOf func(T) Cursor, limit int, nextToken *string) ([]T, *string, error) {
	start := 0
	if nextToken != nil && *nextToken != "" {
		after, err := DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		start = len(items)
		for i, item := range items {
			if cursorOf(item).Before(after) {
				start = i
				break
			}
		}
	}

	if limit <= 0 || start+limit >= len(items) {
		return items[start:], nil, nil
	}

	page := items[start : start+limit]
	token := EncodeToken(cursorOf(page[len(page)-1]))
	return page, &token, nil
}

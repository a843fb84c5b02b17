package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
)

// CountSavedLocations returns the number of saved locations stored for an owner
func CountSavedLocations(db *sql.DB, ownerID string) (int, error) {
	var n int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM saved_locations WHERE owner_id = $1", ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count saved locations for %s: %w", ownerID, err)
	}
	return n, nil
}

package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidTravelMode = New(
		"INVALID_TRAVEL_MODE",
		"Travel mode must be driving or walking",
		http.StatusBadRequest,
	)

	ErrDuplicatePointID = New(
		"DUPLICATE_POINT_ID",
		"Point IDs must be unique",
		http.StatusBadRequest,
	)

	ErrLandmarkNotFound = New(
		"LANDMARK_NOT_FOUND",
		"Landmark not found",
		http.StatusNotFound,
	)

	ErrInvalidLandmarkType = New(
		"INVALID_LANDMARK_TYPE",
		"Invalid landmark type",
		http.StatusBadRequest,
	)

	ErrStaleRoute = New(
		"STALE_ROUTE",
		"Route request was superseded by a newer one",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

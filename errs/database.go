package errs

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrRouteNotFound      = errors.New("route not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrDuplicateKey       = errors.New("duplicate key")
)

// NewRouteNotFoundError builds the 404 returned for any unmatched method/route pair.
func NewRouteNotFoundError(route string) *ApiErr {
	return newApiErr(KindNotFound, ErrRouteNotFound, fmt.Sprintf("Route %s not found", route))
}

func NewConnectionError(cause error) *ApiErr {
	return &ApiErr{
		Kind:    KindInfrastructure,
		err:     ErrDatabaseConnection,
		Details: "Unable to connect to database",
		Cause:   cause,
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		switch {
		case errors.Is(cause, gorm.ErrDuplicatedKey), strings.Contains(cause.Error(), "duplicate key"):
			return &ApiErr{
				Kind:    KindInfrastructure,
				err:     ErrDuplicateKey,
				Details: details,
				Cause:   cause,
			}
		case strings.Contains(cause.Error(), "connection"):
			return NewConnectionError(cause)
		}
	}

	return &ApiErr{
		Kind:    KindInfrastructure,
		err:     ErrDatabaseQuery,
		Details: details,
		Cause:   cause,
	}
}

func IsRouteNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}

func IsDatabaseConnectionError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}

func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

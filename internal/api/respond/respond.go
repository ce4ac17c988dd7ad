// Package respond writes the response envelope shared by every route:
// {"status": <code>, "response": <payload|null>}, HTTP 200 for all domain
// outcomes. It is also where the ownership filter marked by the middleware
// is applied to a handler's payload, just before serialization.
package respond

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/metrics"
	"github.com/recordkeep/records-api/internal/core/authz"
	"github.com/recordkeep/records-api/internal/core/domain"
)

// KeyRestrictOwner holds the caller ID a marked response must be filtered to.
const KeyRestrictOwner = "restrict_owner"

// Envelope is the wire format of every response.
type Envelope struct {
	Status   int `json:"status"`
	Response any `json:"response"`
}

// OK writes a success envelope. When the request carries an ownership mark,
// the payload is filtered first; a foreign single document turns the whole
// response into AccessDenied.
func OK(c echo.Context, payload any) error {
	if owner, ok := c.Get(KeyRestrictOwner).(string); ok && owner != "" {
		filtered, err := authz.FilterPayload(payload, owner)
		if err != nil {
			return Error(c, err)
		}
		payload = filtered
	}
	return write(c, domain.StatusSuccess, payload)
}

// Error writes a failure envelope with the status mapped from err.
func Error(c echo.Context, err error) error {
	return write(c, domain.StatusOf(err), nil)
}

func write(c echo.Context, status int, payload any) error {
	metrics.ResponsesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	return c.JSON(http.StatusOK, Envelope{Status: status, Response: payload})
}

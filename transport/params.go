package transport

import (
	"net/url"
	"strconv"
	"time"

	"github.com/abmshq/abms-backend/constant"
)

func intParam(q url.Values, key string) *int {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func statusParam(q url.Values) *constant.Status {
	n := intParam(q, "status")
	if n == nil {
		return nil
	}
	s := constant.Status(*n)
	return &s
}

// timeParam parses an RFC3339 instant from the query string.
func timeParam(q url.Values, key string) *time.Time {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}

package model

// Response is the uniform envelope returned by every endpoint.
// StatusCode mirrors the HTTP status so API clients reading only the
// body still see the outcome; Count is set on list responses only.
type Response struct {
	StatusCode int    `json:"status_code"`
	ErrMsg     string `json:"err_msg"`
	Data       any    `json:"data,omitempty"`
	Count      *int   `json:"count,omitempty"`
}

package responses

import (
	"fmt"

	"github.com/goccy/go-json"
)

// RemoteResponse is what the WAV clients hand back to the pipeline: the
// status code plus the body both decoded (when it was JSON) and raw. The
// pipeline branches on StatusCode; it never sees a transport-level error
// for a non-2xx status.
type RemoteResponse struct {
	StatusCode int
	JSON       map[string]interface{}
	Text       string
}

func (r *RemoteResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StringField digs a string value out of the decoded body, walking nested
// objects key by key. Missing or non-string values yield "".
func (r *RemoteResponse) StringField(path ...string) string {
	if r.JSON == nil {
		return ""
	}
	current := r.JSON
	for i, key := range path {
		value, ok := current[key]
		if !ok {
			return ""
		}
		if i == len(path)-1 {
			switch v := value.(type) {
			case string:
				return v
			case float64:
				return fmt.Sprintf("%v", v)
			default:
				return ""
			}
		}
		nested, ok := value.(map[string]interface{})
		if !ok {
			return ""
		}
		current = nested
	}
	return ""
}

// ProvenanceCell renders the response for the audit column: the JSON body
// when one was decoded, else the raw text, else a status-only placeholder.
func (r *RemoteResponse) ProvenanceCell() string {
	if r.JSON != nil {
		encoded, err := json.Marshal(r.JSON)
		if err == nil {
			return string(encoded)
		}
	}
	if r.Text != "" {
		return r.Text
	}
	return fmt.Sprintf(`{"status":%d}`, r.StatusCode)
}

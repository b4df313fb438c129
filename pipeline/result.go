package pipeline

import "encoding/json"

// Result is the single record reported to the caller. On success, Text and
// PageCount are present and Error is absent; on failure only Error
// accompanies the flag. MarshalJSON enforces that shape regardless of zero
// values (an empty success text must still appear in the output).
type Result struct {
	Success   bool
	Text      string
	PageCount int
	Error     string
}

// Failure builds a failed Result with the given message.
func Failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{Success: false, Error: r.Error})
	}
	return json.Marshal(struct {
		Success   bool   `json:"success"`
		Text      string `json:"text"`
		PageCount int    `json:"pageCount"`
	}{Success: true, Text: r.Text, PageCount: r.PageCount})
}

package domain

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeMeetingTimes turns a time_json payload into meeting times. The payload
// may be raw JSON (string or bytes) or an already decoded value such as the
// []any a jsonb column scans into.
func DecodeMeetingTimes(raw any) ([]MeetingTime, error) {
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("empty meeting time payload")
	case []MeetingTime:
		return v, nil
	case string:
		return DecodeMeetingTimes([]byte(v))
	case []byte:
		var generic any
		if err := json.Unmarshal(v, &generic); err != nil {
			return nil, fmt.Errorf("meeting time payload: %w", err)
		}
		return DecodeMeetingTimes(generic)
	}

	var times []MeetingTime
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: false,
		Result:      &times,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("meeting time payload: %w", err)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("meeting time payload has no entries")
	}
	return times, nil
}

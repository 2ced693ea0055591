package game

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/statattack/statattack/internal/apperrors"
)

type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// Judge compares a candidate identity against the target. IDs arrive as
// numbers or strings depending on the source, so both sides are coerced
// to int64 before comparing; a strict cross-type comparison would call
// every guess wrong.
func Judge(candidateID, targetID interface{}) (Outcome, error) {
	candidate, err := CoerceID(candidateID)
	if err != nil {
		return OutcomeIncorrect, apperrors.NewAppError(400, "invalid candidate ID", err)
	}
	target, err := CoerceID(targetID)
	if err != nil {
		return OutcomeIncorrect, apperrors.NewAppError(500, "invalid target ID", err)
	}

	if candidate == target {
		return OutcomeCorrect, nil
	}
	return OutcomeIncorrect, nil
}

// CoerceID normalizes a player ID to int64. JSON decoding yields
// float64 for numbers, so whole floats are accepted too.
func CoerceID(v interface{}) (int64, error) {
	switch id := v.(type) {
	case int:
		return int64(id), nil
	case int64:
		return id, nil
	case uint:
		return int64(id), nil
	case float64:
		if id != math.Trunc(id) {
			return 0, fmt.Errorf("player ID is not a whole number: %v", id)
		}
		return int64(id), nil
	case json.Number:
		return id.Int64()
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("player ID is not numeric: %q", id)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported player ID type %T", v)
	}
}

package app

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"brainhub/internal/domain"
)

var errCorruptBoards = errors.New("corrupt leaderboard data")

// decodeBoards parses a persisted board set. Anything that is not an object
// holding the three board arrays is rejected as corrupt.
func decodeBoards(data []byte) (domain.BoardSet, error) {
	if !gjson.ValidBytes(data) {
		return domain.BoardSet{}, fmt.Errorf("%w: invalid json", errCorruptBoards)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return domain.BoardSet{}, fmt.Errorf("%w: expected object, got %s", errCorruptBoards, root.Type)
	}
	for _, board := range domain.Boards {
		if !root.Get(string(board)).IsArray() {
			return domain.BoardSet{}, fmt.Errorf("%w: %s is not an array", errCorruptBoards, board)
		}
	}

	var boards domain.BoardSet
	if err := json.Unmarshal(data, &boards); err != nil {
		return domain.BoardSet{}, fmt.Errorf("%w: %v", errCorruptBoards, err)
	}
	return boards, nil
}

func encodeBoards(boards domain.BoardSet) ([]byte, error) {
	return json.Marshal(boards)
}

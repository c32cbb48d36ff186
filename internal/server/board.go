package server

import (
	"errors"

	"radlands-tracker/internal/db"

	"gorm.io/datatypes"
)

// boardLanes is fixed for the life of a session.
const boardLanes = 3

var errLaneCount = errors.New("columns must have exactly 3 lanes")

type boardUpdateRequest struct {
	Player1Columns *[][]int64 `json:"player1_columns"`
	Player2Columns *[][]int64 `json:"player2_columns"`
	Player1Camps   *[]int64   `json:"player1_camps"`
	Player2Camps   *[]int64   `json:"player2_camps"`
}

func emptyColumns() db.Columns {
	return datatypes.NewJSONType([][]int64{{}, {}, {}})
}

// applyBoardPatch overwrites whole fields present in the payload and leaves
// the rest untouched. Lane contents are taken verbatim; only the lane count
// is checked.
func applyBoardPatch(board *db.BoardState, patch boardUpdateRequest) error {
	if patch.Player1Columns != nil && len(*patch.Player1Columns) != boardLanes {
		return errLaneCount
	}
	if patch.Player2Columns != nil && len(*patch.Player2Columns) != boardLanes {
		return errLaneCount
	}
	if patch.Player1Columns != nil {
		board.Player1Columns = datatypes.NewJSONType(*patch.Player1Columns)
	}
	if patch.Player2Columns != nil {
		board.Player2Columns = datatypes.NewJSONType(*patch.Player2Columns)
	}
	if patch.Player1Camps != nil {
		board.Player1Camps = datatypes.NewJSONSlice(*patch.Player1Camps)
	}
	if patch.Player2Camps != nil {
		board.Player2Camps = datatypes.NewJSONSlice(*patch.Player2Camps)
	}
	return nil
}

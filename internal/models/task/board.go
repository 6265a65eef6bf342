package task

// Board is the kanban view of a task snapshot: one column per status.
type Board struct {
	Todo     []*Task `json:"todo"`
	Progress []*Task `json:"progress"`
	Done     []*Task `json:"done"`
}

// GroupByStatus partitions tasks into board columns, keeping the relative
// order of the input inside each column. Every task lands in exactly one
// column.
func GroupByStatus(tasks []*Task) *Board {
	board := &Board{
		Todo:     []*Task{},
		Progress: []*Task{},
		Done:     []*Task{},
	}

	for _, t := range tasks {
		switch t.Status {
		case StatusProgress:
			board.Progress = append(board.Progress, t)
		case StatusDone:
			board.Done = append(board.Done, t)
		default:
			board.Todo = append(board.Todo, t)
		}
	}

	return board
}

package responses

type GanttEntry struct {
	ProcessId int `json:"process_id"`
	StartTime int `json:"start_time"`
	EndTime   int `json:"end_time"`
}
type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}
type ScheduleResponse struct {
	Gantt                 []GanttEntry      `json:"gantt"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	Details               []ProcessResponse `json:"details"`
}

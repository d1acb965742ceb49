package requests

type Job struct {
	ProcessId   int  `json:"process_id"`
	ArrivalTime int  `json:"arrival_time"`
	BurstTime   int  `json:"burst_time"`
	Priority    *int `json:"priority,omitempty"`
}
type ScheduleRequest struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
}

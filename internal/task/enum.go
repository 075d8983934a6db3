package task

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "Not started"
	StatusInProgress TaskStatus = "In progress"
	StatusDone       TaskStatus = "Done"
)

var AllStatuses = []TaskStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusDone,
}

func (s TaskStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

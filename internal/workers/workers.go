package workers

type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers so the client app can start them with
// a single Run call.
func NewWorkers(list ...Worker) *Workers {
	return &Workers{workers: list}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

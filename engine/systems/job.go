package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/renderer/metadata"
)

/**
 * @brief A fixed pool of workers draining a job queue. Jobs run in no
 * particular order; their callbacks run on the worker that ran them.
 */
type JobSystem struct {
	numWorkers int
	jobQueue   chan metadata.JobTask
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
var ErrJobSystemClosed = fmt.Errorf("job system already shut down")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	jq := make(chan metadata.JobTask, channelSize)
	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   jq,
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				if err := job.OnStart(); err != nil {
					core.LogError("job %s failed: %s", job.Name, err)
					if job.OnFailure != nil {
						job.OnFailure(err)
					}
					continue
				}
				if job.OnComplete != nil {
					job.OnComplete()
				}
			}
		}()
	}
}

/**
 * @brief Shuts the job system down, after every submitted job has run.
 */
func (js *JobSystem) Shutdown() error {
	js.mu.Lock()
	if js.closed {
		js.mu.Unlock()
		return ErrJobSystemClosed
	}
	js.closed = true
	close(js.jobQueue)
	js.mu.Unlock()

	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt metadata.JobTask) error {
	if jt.OnStart == nil {
		return fmt.Errorf("job %s has no entry point", jt.Name)
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	if js.closed {
		return ErrJobSystemClosed
	}
	js.jobQueue <- jt
	return nil
}

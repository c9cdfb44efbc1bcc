package metadata

/** @brief The work a job performs on a worker goroutine. */
type JobStart func() error

/** @brief Definition for completion of a job. */
type JobOnComplete func()

/** @brief Definition for failure of a job. */
type JobOnFailure func(err error)

/**
 * @brief Describes a job to be run.
 */
type JobTask struct {
	/** @brief A short label used in log messages. */
	Name string
	/** @brief Invoked when the job starts. Required. */
	OnStart JobStart
	/** @brief Invoked when OnStart returns nil. Optional. */
	OnComplete JobOnComplete
	/** @brief Invoked with the error returned by OnStart. Optional. */
	OnFailure JobOnFailure
}

package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[any, G]) worker(id int, jobFunc JobFunc[any, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		res := jobFunc(job)
		wp.results <- res
	}
}

func (wp *WorkerPool[any, G]) Start(jobFunc JobFunc[any, G]) {
	for i := 1; i <= wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i, jobFunc)
	}
}

func (wp *WorkerPool[any, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[any, G]) AddJob(job any) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[any, G]) CollectResults() chan G {
	return wp.results
}

func (wp *WorkerPool[any, G]) Close() {
	close(wp.jobQueue)
}

type indexedJob[T any] struct {
	idx int
	job T
}

type indexedResult[G any] struct {
	idx int
	res G
}

// MapOrdered applies fn to every job across numWorkers goroutines and returns
// the results in input order. workers share nothing; the single reader of the
// results channel performs the reduction, so output order does not depend on
// scheduling.
func MapOrdered[T any, G any](numWorkers int, jobs []T, fn func(T) G) []G {
	if numWorkers < 1 {
		numWorkers = 1
	}

	wp := NewWorkerPool[indexedJob[T], indexedResult[G]](numWorkers, len(jobs))
	wp.Start(func(j indexedJob[T]) indexedResult[G] {
		return indexedResult[G]{idx: j.idx, res: fn(j.job)}
	})

	go func() {
		for i, job := range jobs {
			wp.AddJob(indexedJob[T]{idx: i, job: job})
		}
		wp.Close()
		wp.Wait()
	}()

	out := make([]G, len(jobs))
	for res := range wp.CollectResults() {
		out[res.idx] = res.res
	}
	return out
}

package timer

import (
	"container/heap"
	"sync"
	"time"
)

// Task is a scheduled callback. Interval > 0 makes it repeat.
type Task struct {
	ID       int64
	Execute  time.Time
	Interval time.Duration
	Callback func()
	index    int
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	return q[i].Execute.Before(q[j].Execute)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x interface{}) {
	n := len(*q)
	task := x.(*Task)
	task.index = n
	*q = append(*q, task)
}

func (q *taskQueue) Pop() interface{} {
	old := *q
	n := len(old)
	task := old[n-1]
	task.index = -1
	*q = old[0 : n-1]
	return task
}

// Scheduler runs delayed and repeating callbacks from a single dispatch
// goroutine, so tasks due on the same tick fire in submission order and never
// race each other. Resolution bounds how late a callback can fire.
type Scheduler struct {
	mu     sync.Mutex
	queue  taskQueue
	nextID int64
	stop   chan struct{}
	once   sync.Once
}

func NewScheduler(resolution time.Duration) *Scheduler {
	s := &Scheduler{
		queue:  make(taskQueue, 0),
		nextID: 1,
		stop:   make(chan struct{}),
	}
	heap.Init(&s.queue)
	go s.run(resolution)
	return s
}

// After schedules fn to run once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) int64 {
	return s.add(delay, 0, fn)
}

// Every schedules fn to run repeatedly, first firing one interval from now.
func (s *Scheduler) Every(interval time.Duration, fn func()) int64 {
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &Task{
		ID:       s.nextID,
		Execute:  time.Now().Add(delay),
		Interval: interval,
		Callback: fn,
	}
	s.nextID++
	heap.Push(&s.queue, task)
	return task.ID
}

// Cancel drops a pending task. A repeating task stops rescheduling.
func (s *Scheduler) Cancel(taskID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.queue {
		if task.ID == taskID {
			heap.Remove(&s.queue, i)
			break
		}
	}
}

// Stop halts the dispatch loop; pending tasks never fire.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
}

func (s *Scheduler) run(resolution time.Duration) {
	ticker := time.NewTicker(resolution)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			for _, task := range s.due(time.Now()) {
				task.Callback()
			}
		}
	}
}

// due pops every task whose time has come, rescheduling repeating ones.
func (s *Scheduler) due(now time.Time) []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fired []*Task
	for s.queue.Len() > 0 {
		task := s.queue[0]
		if task.Execute.After(now) {
			break
		}
		heap.Pop(&s.queue)
		fired = append(fired, task)

		if task.Interval > 0 {
			task.Execute = now.Add(task.Interval)
			heap.Push(&s.queue, task)
		}
	}
	return fired
}

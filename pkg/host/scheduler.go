package host

import (
	"time"
)

// TaskID 调度任务标识，0 表示无效任务
type TaskID uint64

// Scheduler 宿主提供的定时原语
type Scheduler interface {
	// Every 注册周期任务，首次在 interval 之后执行
	Every(interval time.Duration, fn func()) TaskID
	// After 注册一次性延迟任务
	After(delay time.Duration, fn func()) TaskID
	// Cancel 取消尚未执行的任务，对已完成或未知的ID无效果
	Cancel(id TaskID)
}

type scheduledTask struct {
	id       TaskID
	due      time.Duration
	interval time.Duration // 0 表示一次性任务
	fn       func()
}

// LoopScheduler 由宿主主循环驱动的单线程调度器
//
// 宿主每帧调用 Advance(dt) 推进虚拟时间；到期任务按到期时间顺序执行，
// 到期时间相同则按注册顺序执行。dt 跨越多个周期时周期任务会补齐执行次数。
// 回调中新注册、且在本次推进范围内到期的任务也会在本次 Advance 中执行。
//
// LoopScheduler 不是并发安全的，只能在宿主循环所在的 goroutine 中使用。
type LoopScheduler struct {
	now    time.Duration
	nextID TaskID
	tasks  map[TaskID]*scheduledTask
}

// NewLoopScheduler 创建调度器，虚拟时间从 0 开始
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{
		nextID: 1,
		tasks:  make(map[TaskID]*scheduledTask),
	}
}

// Now 返回当前虚拟时间
func (s *LoopScheduler) Now() time.Duration {
	return s.now
}

// Pending 返回尚未完成的任务数量（周期任务始终计入）
func (s *LoopScheduler) Pending() int {
	return len(s.tasks)
}

// Every 注册周期任务，interval <= 0 时忽略并返回 0
func (s *LoopScheduler) Every(interval time.Duration, fn func()) TaskID {
	if interval <= 0 || fn == nil {
		return 0
	}
	return s.add(interval, interval, fn)
}

// After 注册一次性延迟任务，delay < 0 按 0 处理
func (s *LoopScheduler) After(delay time.Duration, fn func()) TaskID {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

// Cancel 取消任务
func (s *LoopScheduler) Cancel(id TaskID) {
	delete(s.tasks, id)
}

func (s *LoopScheduler) add(delay, interval time.Duration, fn func()) TaskID {
	id := s.nextID
	s.nextID++
	s.tasks[id] = &scheduledTask{
		id:       id,
		due:      s.now + delay,
		interval: interval,
		fn:       fn,
	}
	return id
}

// Advance 推进虚拟时间 dt 并执行期间到期的所有任务
// 返回本次执行的回调次数
func (s *LoopScheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}

		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			delete(s.tasks, next.id)
		}

		next.fn()
		fired++
	}

	s.now = target
	return fired
}

// nextDue 找出到期时间不晚于 target 的最早任务（同时到期取ID最小者）
func (s *LoopScheduler) nextDue(target time.Duration) *scheduledTask {
	var best *scheduledTask
	for _, t := range s.tasks {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

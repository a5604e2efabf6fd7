package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/neuralfx/pkg/config"
	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/types"
)

const testNetworkSurface = "neuralNetwork"

// queueRandom 优先返回队列中的值，队列耗尽后使用种子随机源
// 用于在构造完成后精确控制后续的随机抽取
type queueRandom struct {
	queue    []float64
	fallback *rand.Rand
}

func newQueueRandom(seed int64) *queueRandom {
	return &queueRandom{fallback: rand.New(rand.NewSource(seed))}
}

func (r *queueRandom) Push(values ...float64) {
	r.queue = append(r.queue, values...)
}

func (r *queueRandom) Float64() float64 {
	if len(r.queue) > 0 {
		v := r.queue[0]
		r.queue = r.queue[1:]
		return v
	}
	return r.fallback.Float64()
}

// newTestEnv 创建带全视口网络表面的测试环境
func newTestEnv(t *testing.T, rng host.Random, width, height float64) (host.Environment, *host.LoopScheduler) {
	t.Helper()
	doc := host.NewDocument(width, height)
	doc.Mount(testNetworkSurface, types.RectFromSize(width, height))
	sched := host.NewLoopScheduler()
	return host.Environment{Random: rng, Scheduler: sched, Document: doc}, sched
}

func testNetworkConfig() config.NetworkConfig {
	return config.Default().Network
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

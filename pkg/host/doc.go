// Package host 定义特效运行所依赖的宿主环境契约
//
// 特效本身不直接接触窗口、终端或系统时钟，而是通过本包消费：
//   - Random: [0,1) 均匀随机数源
//   - Scheduler: 周期任务与一次性延迟任务
//   - Document: 具名渲染表面（Surface）的查找、挂载与视口尺寸
//   - Preferences: 减少动效偏好，启动时读取一次
//
// 所有回调都在宿主循环的同一个 goroutine 中顺序执行，
// 因此特效内部不需要任何锁。
package host

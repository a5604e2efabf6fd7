package host

import (
	"os"
	"strconv"
)

// ReducedMotionEnv 覆盖减少动效偏好的环境变量
const ReducedMotionEnv = "NEURALFX_REDUCED_MOTION"

// Environment 特效构造时需要的宿主能力集合
type Environment struct {
	Random    Random
	Scheduler Scheduler
	Document  *Document
}

// Preferences 用户偏好查询
type Preferences interface {
	PrefersReducedMotion() bool
}

// StaticPreferences 启动时确定、之后不再变化的偏好
type StaticPreferences struct {
	ReducedMotion bool
}

// PrefersReducedMotion 实现 Preferences
func (p StaticPreferences) PrefersReducedMotion() bool {
	return p.ReducedMotion
}

// ReadPreferences 读取一次环境变量形成偏好快照
// 环境变量未设置或无法解析时使用 fallback（通常来自配置文件）
func ReadPreferences(fallback bool) StaticPreferences {
	return readPreferences(os.Getenv, fallback)
}

func readPreferences(getenv func(string) string, fallback bool) StaticPreferences {
	raw := getenv(ReducedMotionEnv)
	if raw == "" {
		return StaticPreferences{ReducedMotion: fallback}
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return StaticPreferences{ReducedMotion: fallback}
	}
	return StaticPreferences{ReducedMotion: v}
}

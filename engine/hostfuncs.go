package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/skillsenselab/enginekit/logger"
)

// Host function names shared by every family's import namespace.
const (
	HostLog      = "host_log"
	HostNowMS    = "host_now_ms"
	HostRandSeed = "host_rand_seed"
)

// LogHostFunc returns the host_log(level i32, ptr i32, len i32) import.
// The engine binary passes a UTF-8 message in linear memory.
func LogHostFunc(log *logger.Logger) HostFunc {
	return HostFunc{
		Params: []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32},
		Fn: func(ctx context.Context, mem Memory, stack []uint64) {
			level := uint32(stack[0])
			ptr := uint32(stack[1])
			length := uint32(stack[2])

			msg, ok := mem.Read(ptr, length)
			if !ok {
				log.Warn("engine log message out of bounds")
				return
			}
			switch level {
			case 0:
				log.Debug(string(msg))
			case 2:
				log.Warn(string(msg))
			case 3:
				log.Error(string(msg))
			default:
				log.Info(string(msg))
			}
		},
	}
}

// NowHostFunc returns the host_now_ms() -> i64 import.
func NowHostFunc() HostFunc {
	return HostFunc{
		Results: []ValueType{ValueTypeI64},
		Fn: func(ctx context.Context, mem Memory, stack []uint64) {
			stack[0] = uint64(time.Now().UnixMilli())
		},
	}
}

// RandSeedHostFunc returns the host_rand_seed() -> i64 import.
func RandSeedHostFunc() HostFunc {
	return HostFunc{
		Results: []ValueType{ValueTypeI64},
		Fn: func(ctx context.Context, mem Memory, stack []uint64) {
			stack[0] = rand.Uint64()
		},
	}
}

// DefaultImports builds the host import table shared by all families.
func DefaultImports(log *logger.Logger) map[string]HostFunc {
	return map[string]HostFunc{
		HostLog:      LogHostFunc(log),
		HostNowMS:    NowHostFunc(),
		HostRandSeed: RandSeedHostFunc(),
	}
}

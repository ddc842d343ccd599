package quadrics

import (
	"fmt"
	"sync"

	"github.com/aukilabs/go-tooling/pkg/logs"
)

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	logs.Debug(fmt.Sprintf(format, args...))
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		logs.Debug(fmt.Sprintf(format, args...))
	})
}

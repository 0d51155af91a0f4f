package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestSetLevel(t *testing.T) {
	defer level.Set(level.Level())
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		if err := SetLevel("warn"); err != nil {
			t.Fatal(err)
		}
		logger.Info("hidden")
		logger.Warn("shown", "handle", 42)
		if strings.Contains(buf.String(), "hidden") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "handle=42") {
			t.Fatalf("got %s", buf.String())
		}
		if err := SetLevel("loud"); err == nil {
			t.Fatal("should error")
		}
	})
}

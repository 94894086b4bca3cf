package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnReadStart(ctx, "budget.csv")
	p.OnReadComplete(ctx, "budget.csv", 12, 20, time.Second, nil)
	p.OnLayoutStart(ctx, "sunburst", 20)
	p.OnLayoutComplete(ctx, "sunburst", time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	o := NoopOutputHooks{}
	o.OnWrite(ctx, "budget.svg", "svg", 1024)
	o.OnWriteError(ctx, "budget.pdf", "pdf", errors.New("disk full"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Output() should return NoopOutputHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customOutput := &testOutputHooks{}
	SetOutputHooks(customOutput)
	if Output() != customOutput {
		t.Error("SetOutputHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Reset() should restore NoopOutputHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	out := &testOutputHooks{}
	SetOutputHooks(out)
	SetOutputHooks(nil)
	if Output() != out {
		t.Error("SetOutputHooks(nil) should be ignored")
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testOutputHooks struct{ NoopOutputHooks }

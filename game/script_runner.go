package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dop251/goja"
)

var (
	// ErrNoDecide is returned for scripts that do not define a decide function
	ErrNoDecide = errors.New("script must define a 'decide' function")

	// ErrBudgetExceeded is returned when a script is interrupted by its deadline
	ErrBudgetExceeded = errors.New("script exceeded its time budget")
)

// ScriptRunner executes a team's decide function with goja. The script is
// compiled and evaluated once; each side owns its own runner so scripts keep
// their globals between calls without sharing them.
type ScriptRunner struct {
	mu     sync.Mutex
	name   string
	vm     *goja.Runtime
	decide goja.Callable
}

// NewScriptRunner compiles code and resolves its decide function
func NewScriptRunner(name, code string) (*ScriptRunner, error) {
	prog, err := goja.Compile(name, code, false)
	if err != nil {
		return nil, fmt.Errorf("script %s parse error: %w", name, err)
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	if _, err := vm.RunProgram(prog); err != nil {
		return nil, fmt.Errorf("script %s execution failed: %w", name, err)
	}

	decide, ok := goja.AssertFunction(vm.Get("decide"))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDecide, name)
	}

	return &ScriptRunner{name: name, vm: vm, decide: decide}, nil
}

// Execute calls decide with sc. The bool result is false when the script
// returned null or undefined. A cancelled or expired ctx interrupts the script.
func (r *ScriptRunner) Execute(ctx context.Context, sc ScriptContext) (ScriptDecision, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ScriptDecision{}, false, r.ctxError(err)
	}

	defer r.vm.ClearInterrupt()
	stop := context.AfterFunc(ctx, func() {
		r.vm.Interrupt(ctx.Err())
	})
	defer stop()

	result, err := r.decide(goja.Undefined(), r.vm.ToValue(sc))
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return ScriptDecision{}, false, r.ctxError(ctx.Err())
		}
		return ScriptDecision{}, false, fmt.Errorf("script %s decide failed: %w", r.name, err)
	}

	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return ScriptDecision{}, false, nil
	}

	// Convert result to JSON and then to ScriptDecision
	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return ScriptDecision{}, false, fmt.Errorf("script %s: failed to serialize result: %w", r.name, err)
	}

	var decision ScriptDecision
	if err := json.Unmarshal(resultJSON, &decision); err != nil {
		return ScriptDecision{}, false, fmt.Errorf("script %s: failed to parse result: %w (result: %s)", r.name, err, string(resultJSON))
	}
	return decision, true, nil
}

func (r *ScriptRunner) ctxError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrBudgetExceeded, r.name)
	}
	return fmt.Errorf("script %s interrupted: %w", r.name, err)
}

// Package upload drives the contract upload lifecycle: a four-state
// machine with a client-side filename guard in front of it. No request is
// ever issued for a rejected file.
package upload

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/statekit"

	"github.com/clauseguard/clausectl/pkg/domain/contract"
)

// State constants for statekit integration. These must remain untyped
// string constants for statekit.StateID compatibility.
const (
	StateIdle    = "idle"
	StateLoading = "loading"
	StateSuccess = "success"
	StateError   = "error"
)

// Events accepted by the machine.
const (
	EventSubmit  = "submit"
	EventSucceed = "succeed"
	EventFail    = "fail"
)

// acceptedExtensions is the client-side upload whitelist, enforced before
// any network call.
var acceptedExtensions = []string{".pdf", ".txt"}

// AcceptsFilename reports whether the filename's extension (text after
// the final dot, case-insensitive) is on the upload whitelist.
func AcceptsFilename(name string) bool {
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return false
	}
	ext := strings.ToLower(name[dot:])
	for _, accepted := range acceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

// AcceptedExtensions returns the whitelist for display.
func AcceptedExtensions() []string {
	out := make([]string, len(acceptedExtensions))
	copy(out, acceptedExtensions)
	return out
}

// flowContext carries the filename being validated into the submit guard.
type flowContext struct {
	Filename func() string
}

// Flow is the upload lifecycle machine. Idle, success and error all accept
// a new submission; loading resolves through exactly one of Succeed or
// Fail. Completions are tagged with the attempt sequence Submit handed
// out, so a stale in-flight upload cannot overwrite a newer attempt.
type Flow struct {
	interpreter *statekit.Interpreter[flowContext]
	pending     string
	result      *contract.UploadResult
	errMsg      string
	seq         uint64
}

// NewFlow builds the machine in its idle state.
func NewFlow() (*Flow, error) {
	f := &Flow{}

	builder := statekit.NewMachine[flowContext]("upload-flow").
		WithInitial(StateIdle).
		WithContext(flowContext{Filename: func() string { return f.pending }}).
		WithGuard("acceptedFile", func(ctx flowContext, e statekit.Event) bool {
			return AcceptsFilename(ctx.Filename())
		})

	builder.State(StateIdle).
		On(EventSubmit).Target(StateLoading).Guard("acceptedFile").
		Done()

	builder.State(StateLoading).
		On(EventSucceed).Target(StateSuccess).
		On(EventFail).Target(StateError).
		Done()

	builder.State(StateSuccess).
		On(EventSubmit).Target(StateLoading).Guard("acceptedFile").
		Done()

	builder.State(StateError).
		On(EventSubmit).Target(StateLoading).Guard("acceptedFile").
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build upload flow: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()
	f.interpreter = interpreter
	return f, nil
}

// State returns the current machine state.
func (f *Flow) State() string {
	return string(f.interpreter.State().Value)
}

// Submit validates the filename and, when accepted, moves the flow to
// loading and returns the attempt sequence the eventual completion must
// carry. A rejected filename leaves the flow exactly where it was and
// returns an error to surface as a blocking notice; the caller must not
// issue a request for it.
func (f *Flow) Submit(filename string) (uint64, error) {
	f.pending = filename
	f.interpreter.Send(statekit.Event{Type: EventSubmit})
	// Either the guard rejected the file (state unchanged), or the machine
	// was already loading: a further accepted submission supersedes the
	// in-flight attempt without a transition.
	if f.State() != StateLoading || !AcceptsFilename(filename) {
		return 0, fmt.Errorf("only %s files are accepted", strings.Join(acceptedExtensions, " and "))
	}
	f.errMsg = ""
	f.seq++
	return f.seq, nil
}

// Succeed resolves attempt seq with the service's upload result. Stale
// attempts are discarded.
func (f *Flow) Succeed(seq uint64, result contract.UploadResult) {
	if seq != f.seq || f.State() != StateLoading {
		return
	}
	f.result = &result
	f.interpreter.Send(statekit.Event{Type: EventSucceed})
}

// Fail resolves attempt seq with an error message: the collaborator's raw
// failure detail when available, otherwise a generic message.
func (f *Flow) Fail(seq uint64, message string) {
	if seq != f.seq || f.State() != StateLoading {
		return
	}
	if message == "" {
		message = "Upload failed"
	}
	f.errMsg = message
	f.interpreter.Send(statekit.Event{Type: EventFail})
}

// Result returns the upload result while in the success state.
func (f *Flow) Result() *contract.UploadResult {
	if f.State() != StateSuccess {
		return nil
	}
	return f.result
}

// ErrorMessage returns the failure detail while in the error state.
func (f *Flow) ErrorMessage() string {
	if f.State() != StateError {
		return ""
	}
	return f.errMsg
}

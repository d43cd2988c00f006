package vimfault_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmgilman/vimfault"
)

func ExampleDecode() {
	err := vimfault.Decode("FileFaultFault", "Cannot access file",
		map[string]any{"file": "/vmfs/volumes/x"}, nil)

	file, _ := vimfault.Get(err, vimfault.KeyFile)
	fmt.Println(err.Kind().Name(), file)
	// Output: FileFault /vmfs/volumes/x
}

func ExampleDecode_unknownKind() {
	err := vimfault.Decode("SomeFutureFault", "Something new", nil, nil)

	fmt.Println(err.Kind().Name(), err.WireName())
	fmt.Println(err)
	// Output:
	// UnknownFault SomeFutureFault
	// [SomeFutureFault] Something new
}

func ExampleNew() {
	err := vimfault.New(vimfault.ConcurrentAccess, "Object was modified", vimfault.Detail{})
	fmt.Println(err.Error())
	// Output: [ConcurrentAccess] Object was modified
}

func ExampleWrap() {
	decodeErr := errors.New("unexpected end of element")
	err := vimfault.Wrap(decodeErr, vimfault.ConcurrentAccess, "Object was modified", vimfault.Detail{})

	fmt.Println(errors.Is(err, decodeErr))
	// Output: true
}

func ExampleKind_IsA() {
	err := fmt.Errorf("delete: %w",
		vimfault.Decode("FileLockedFault", "locked", map[string]any{"file": "[ds1] vm/vm.vmdk"}, nil))

	fmt.Println(errors.Is(err, vimfault.FileFault))
	fmt.Println(errors.Is(err, vimfault.FileNotFound))
	// Output:
	// true
	// false
}

func ExampleIsRetryable() {
	busy := vimfault.Decode("TaskInProgressFault", "busy",
		map[string]any{"task": "Task:task-12"}, nil)
	missing := vimfault.Decode("FileNotFoundFault", "missing",
		map[string]any{"file": "[ds1] vm/vm.vmx"}, nil)

	fmt.Println("TaskInProgress retryable:", vimfault.IsRetryable(busy))
	fmt.Println("FileNotFound retryable:", vimfault.IsRetryable(missing))
	// Output:
	// TaskInProgress retryable: true
	// FileNotFound retryable: false
}

func ExampleDetailAs() {
	type memory struct {
		Unreserved int64
		Requested  int64
	}

	err := vimfault.Decode("InsufficientMemoryResourcesFaultFault", "not enough memory",
		map[string]any{"unreserved": "512", "requested": 1024}, nil)

	m, _ := vimfault.DetailAs[memory](err.Detail())
	fmt.Printf("%d of %d\n", m.Unreserved, m.Requested)
	// Output: 512 of 1024
}

func ExampleRegistry_Extend() {
	vsan := vimfault.NewKind("VsanFault", vimfault.VimFault,
		vimfault.WithFields(vimfault.OptionalField("uuid", vimfault.TypeString)))

	r, _ := vimfault.Default().Extend(vsan)
	err := r.Decode("VsanFaultFault", "disk group unhealthy", nil, nil)

	fmt.Println(err.Kind().Name(), errors.Is(err, vimfault.VimFault))
	// Output: VsanFault true
}

func ExampleToJSON() {
	err := vimfault.Decode("ConcurrentAccessFault", "Object was modified", nil, nil)

	data, _ := json.Marshal(vimfault.ToJSON(err))
	fmt.Println(string(data))
	// Output: {"kind":"ConcurrentAccess","wireName":"ConcurrentAccessFault","code":"CONFLICT","message":"Object was modified","classification":"RETRYABLE"}
}

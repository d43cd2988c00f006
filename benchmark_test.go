package vimfault_test

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jmgilman/vimfault"
)

// BenchmarkDecode measures binding a known kind with one detail field.
func BenchmarkDecode(b *testing.B) {
	raw := map[string]any{"file": "[ds1] vm/vm.vmx"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = vimfault.Decode("FileNotFoundFault", "File was not found", raw, nil)
	}
}

func BenchmarkDecode_Unknown(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = vimfault.Decode("SomeFutureFault", "Something new", nil, nil)
	}
}

func BenchmarkLookup_Qualified(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = vimfault.Lookup("{urn:vim25}InsufficientMemoryResourcesFaultFault")
	}
}

// BenchmarkIs measures lineage matching through a wrapped chain.
func BenchmarkIs(b *testing.B) {
	err := fmt.Errorf("delete: %w", vimfault.New(vimfault.FileLocked, "locked", vimfault.Detail{}))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = stderrors.Is(err, vimfault.MethodFault)
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	err := vimfault.Decode("TaskInProgressFault", "busy", map[string]any{"task": "Task:task-1"}, nil)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(err)
	}
}

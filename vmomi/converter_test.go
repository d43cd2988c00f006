package vmomi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmware/govmomi/task"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/jmgilman/vimfault"
)

func TestFromMethodFault(t *testing.T) {
	fe := FromMethodFault("File [ds1] vm/vm.vmx was not found",
		&types.FileNotFound{FileFault: types.FileFault{File: "[ds1] vm/vm.vmx"}}, nil)

	require.Same(t, vimfault.FileNotFound, fe.Kind())
	require.Equal(t, "FileNotFoundFault", fe.WireName())
	require.Equal(t, "File [ds1] vm/vm.vmx was not found", fe.Message())
	require.Nil(t, fe.Unwrap())

	file, ok := vimfault.KeyFile.From(fe.Detail())
	require.True(t, ok)
	require.Equal(t, "[ds1] vm/vm.vmx", file)
}

func TestFromMethodFault_Fields(t *testing.T) {
	tests := []struct {
		name  string
		fault types.BaseMethodFault
		kind  *vimfault.Kind
		want  map[string]any
	}{
		{
			name:  "moref field",
			fault: &types.TaskInProgress{Task: types.ManagedObjectReference{Type: "Task", Value: "task-12"}},
			kind:  vimfault.TaskInProgress,
			want:  map[string]any{"task": vimfault.MoRef{Type: "Task", Value: "task-12"}},
		},
		{
			name: "string enum fields",
			fault: &types.InvalidPowerState{
				RequestedState: types.VirtualMachinePowerStatePoweredOn,
				ExistingState:  types.VirtualMachinePowerStatePoweredOff,
			},
			kind: vimfault.InvalidPowerState,
			want: map[string]any{"requestedState": "poweredOn", "existingState": "poweredOff"},
		},
		{
			name:  "omitted optional field",
			fault: &types.InvalidPowerState{ExistingState: types.VirtualMachinePowerStateSuspended},
			kind:  vimfault.InvalidPowerState,
			want:  map[string]any{"existingState": "suspended"},
		},
		{
			name:  "inherited field",
			fault: &types.InvalidDatastorePath{DatastorePath: "[ds9] x", InvalidDatastore: types.InvalidDatastore{Name: "ds9"}},
			kind:  vimfault.InvalidDatastorePath,
			want:  map[string]any{"datastorePath": "[ds9] x", "name": "ds9"},
		},
		{
			name:  "no fields",
			fault: &types.ConcurrentAccess{},
			kind:  vimfault.ConcurrentAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := FromMethodFault("msg", tt.fault, nil)
			require.Same(t, tt.kind, fe.Kind())
			require.Equal(t, tt.want, fe.Detail().Fields())
			require.Nil(t, fe.Unwrap())
		})
	}
}

func TestFromMethodFault_UnknownType(t *testing.T) {
	fe := FromMethodFault("snapshot failed", &types.SnapshotFault{}, nil)

	require.Same(t, vimfault.UnknownFault, fe.Kind())
	require.Equal(t, "SnapshotFaultFault", fe.WireName())
	require.Equal(t, "snapshot failed", fe.Message())
}

func TestFromMethodFault_FaultCause(t *testing.T) {
	fault := &types.SystemError{Reason: "hostd restarted"}
	fault.FaultCause = &types.LocalizedMethodFault{
		Fault:            &types.HostCommunication{},
		LocalizedMessage: "host unreachable",
	}

	fe := FromMethodFault("A general system error occurred", fault, nil)
	require.Same(t, vimfault.SystemError, fe.Kind())
	require.ErrorIs(t, fe, vimfault.HostCommunication)

	inner, ok := vimfault.AsKind(fe, vimfault.HostCommunication)
	require.True(t, ok)
	require.Equal(t, "host unreachable", inner.Message())
}

func TestFromMethodFault_FaultCauseJoinsCause(t *testing.T) {
	transportErr := errors.New("trailing garbage")
	fault := &types.SystemError{Reason: "r"}
	fault.FaultCause = &types.LocalizedMethodFault{Fault: &types.NotSupported{}}

	fe := FromMethodFault("m", fault, transportErr)
	require.ErrorIs(t, fe, transportErr)
	require.ErrorIs(t, fe, vimfault.NotSupported)
}

func TestFromMethodFault_MessageFallback(t *testing.T) {
	fault := &types.InvalidLogin{}
	fault.FaultMessage = []types.LocalizableMessage{
		{Key: "vim.fault.InvalidLogin.summary"},
		{Key: "vim.fault.InvalidLogin", Message: "Cannot complete login"},
	}

	fe := FromMethodFault("", fault, nil)
	require.Equal(t, "Cannot complete login", fe.Message())
	require.Equal(t, vimfault.CodeUnauthorized, fe.Code())
}

func TestFromMethodFault_Nil(t *testing.T) {
	fe := FromMethodFault("lost", nil, nil)
	require.Same(t, vimfault.MalformedFault, fe.Kind())

	var nilFault *types.FileFault
	fe = FromMethodFault("lost", nilFault, nil)
	require.Same(t, vimfault.MalformedFault, fe.Kind())
}

func TestFromLocalizedMethodFault(t *testing.T) {
	fe := FromLocalizedMethodFault(&types.LocalizedMethodFault{
		Fault:            &types.FileLocked{FileFault: types.FileFault{File: "[ds1] vm/vm.vmdk"}},
		LocalizedMessage: "Unable to access file since it is locked",
	})

	require.Same(t, vimfault.FileLocked, fe.Kind())
	require.True(t, vimfault.IsRetryable(fe))
	require.Equal(t, "Unable to access file since it is locked", fe.Message())

	require.Same(t, vimfault.MalformedFault, FromLocalizedMethodFault(nil).Kind())
	require.Same(t, vimfault.MalformedFault, FromLocalizedMethodFault(&types.LocalizedMethodFault{}).Kind())
}

func TestFromError_SoapFault(t *testing.T) {
	f := &soap.Fault{Code: "ServerFaultCode", String: "The object has already been deleted or has not been completely created"}
	f.Detail.Fault = types.ManagedObjectNotFound{Obj: types.ManagedObjectReference{Type: "VirtualMachine", Value: "vm-7"}}

	fe, ok := FromError(fmt.Errorf("power on: %w", soap.WrapSoapFault(f)))
	require.True(t, ok)
	require.Same(t, vimfault.ManagedObjectNotFound, fe.Kind())
	require.Equal(t, f.String, fe.Message())
	require.Equal(t, "ServerFaultCode", fe.Context()[ContextFaultCode])

	obj, ok := vimfault.KeyObj.From(fe.Detail())
	require.True(t, ok)
	require.Equal(t, vimfault.MoRef{Type: "VirtualMachine", Value: "vm-7"}, obj)
}

func TestFromError_SoapFaultWithoutDetail(t *testing.T) {
	f := &soap.Fault{Code: "ServerFaultCode", String: "internal error"}

	fe, ok := FromError(soap.WrapSoapFault(f))
	require.True(t, ok)
	require.Same(t, vimfault.MalformedFault, fe.Kind())
	require.Equal(t, "internal error", fe.Message())
}

func TestFromError_VimFault(t *testing.T) {
	fe, ok := FromError(soap.WrapVimFault(&types.NotAuthenticated{}))
	require.True(t, ok)
	require.Same(t, vimfault.NotAuthenticated, fe.Kind())
	require.ErrorIs(t, fe, vimfault.SecurityError)
}

func TestFromError_TaskError(t *testing.T) {
	err := task.Error{LocalizedMethodFault: &types.LocalizedMethodFault{
		Fault:            &types.InsufficientMemoryResourcesFault{Unreserved: 512, Requested: 2048},
		LocalizedMessage: "Insufficient memory resources",
	}}

	fe, ok := FromError(fmt.Errorf("wait: %w", err))
	require.True(t, ok)
	require.Same(t, vimfault.InsufficientMemoryResourcesFault, fe.Kind())
	require.Equal(t, map[string]any{"unreserved": int64(512), "requested": int64(2048)}, fe.Detail().Fields())
}

func TestFromError_ExistingFault(t *testing.T) {
	orig := vimfault.New(vimfault.Timedout, "slow", vimfault.Detail{})

	fe, ok := FromError(fmt.Errorf("wrapped: %w", orig))
	require.True(t, ok)
	require.Same(t, orig, fe)
}

func TestFromError_NoFault(t *testing.T) {
	_, ok := FromError(errors.New("dial tcp: connection refused"))
	require.False(t, ok)

	_, ok = FromError(nil)
	require.False(t, ok)
}

func TestConverter_CustomRegistry(t *testing.T) {
	snapshot := vimfault.NewKind("SnapshotFault", vimfault.VimFault, vimfault.WithCode(vimfault.CodeInvalidState))
	r, err := vimfault.Default().Extend(snapshot)
	require.NoError(t, err)

	fe := NewConverter(r).FromMethodFault("snapshot failed", &types.SnapshotFault{}, nil)
	require.Same(t, snapshot, fe.Kind())
	require.Equal(t, vimfault.CodeInvalidState, fe.Code())
}

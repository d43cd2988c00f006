package vimfault

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	d, _ := NewDetail(FileNotFound, map[string]any{"file": "[ds1] vm/vm.vmx"})
	fe := WithContext(New(FileNotFound, "File was not found", d), "method", "SearchDatastore_Task")

	resp := ToJSON(fmt.Errorf("search: %w", fe))
	require.Equal(t, &ErrorResponse{
		Kind:           "FileNotFound",
		WireName:       "FileNotFoundFault",
		Code:           "NOT_FOUND",
		Message:        "File was not found",
		Classification: "PERMANENT",
		Detail:         map[string]any{"file": "[ds1] vm/vm.vmx"},
		Context:        map[string]any{"method": "SearchDatastore_Task"},
	}, resp)
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(errors.New("connection refused"))

	require.Equal(t, "UnknownFault", resp.Kind)
	require.Empty(t, resp.WireName)
	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "connection refused", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
}

func TestToJSON_Nil(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestMarshalJSON(t *testing.T) {
	d, _ := NewDetail(NoPermission, map[string]any{
		"object":      "VirtualMachine:vm-42",
		"privilegeId": "VirtualMachine.Interact.PowerOn",
	})
	fe := Wrap(errors.New("hidden cause"), NoPermission, "Permission to perform this operation was denied.", d)

	data, err := json.Marshal(fe)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"kind": "NoPermission",
		"wireName": "NoPermissionFault",
		"code": "FORBIDDEN",
		"message": "Permission to perform this operation was denied.",
		"classification": "PERMANENT",
		"detail": {
			"object": {"type": "VirtualMachine", "value": "vm-42"},
			"privilegeId": "VirtualMachine.Interact.PowerOn"
		}
	}`, string(data))
	require.NotContains(t, string(data), "hidden cause")
}

func TestMarshalJSON_UnknownFault(t *testing.T) {
	data, err := json.Marshal(Decode("SomeFutureFault", "new", map[string]any{"x": 1}, nil))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"kind": "UnknownFault",
		"wireName": "SomeFutureFault",
		"code": "UNKNOWN",
		"message": "new",
		"classification": "PERMANENT",
		"context": {"raw_detail": {"x": 1}}
	}`, string(data))
}

func TestMarshalJSON_Error(t *testing.T) {
	fe := WithContext(New(NotFound, "gone", Detail{}), "bad", make(chan int))

	_, err := json.Marshal(fe)
	require.Error(t, err)
	require.Contains(t, err.Error(), "marshal NotFound fault")
}

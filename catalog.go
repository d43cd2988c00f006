package vimfault

// Namespace is the XML namespace of vim25 fault detail elements.
const Namespace = "urn:vim25"

// Root kinds. Every vim25 fault derives from MethodFault; RuntimeFault covers
// faults any method may raise, VimFault covers faults declared per method.
var (
	MethodFault  = NewKind("MethodFault", nil, WithCode(CodeInternal))
	RuntimeFault = NewKind("RuntimeFault", MethodFault)
	VimFault     = NewKind("VimFault", MethodFault)
)

// Runtime faults.
var (
	ManagedObjectNotFound = NewKind("ManagedObjectNotFound", RuntimeFault,
		WithCode(CodeNotFound),
		WithFields(Field("obj", TypeMoRef)))
	InvalidArgument = NewKind("InvalidArgument", RuntimeFault,
		WithCode(CodeInvalidInput),
		WithFields(OptionalField("invalidProperty", TypeString)))
	InvalidRequest = NewKind("InvalidRequest", RuntimeFault, WithCode(CodeInvalidInput))
	InvalidType    = NewKind("InvalidType", InvalidRequest,
		WithFields(OptionalField("argument", TypeString)))
	MethodNotFound = NewKind("MethodNotFound", InvalidRequest,
		WithCode(CodeNotSupported),
		WithFields(Field("receiver", TypeMoRef), Field("method", TypeString)))
	NotSupported      = NewKind("NotSupported", RuntimeFault, WithCode(CodeNotSupported))
	NotImplemented    = NewKind("NotImplemented", RuntimeFault, WithCode(CodeNotSupported))
	HostCommunication = NewKind("HostCommunication", RuntimeFault, WithCode(CodeNetwork))
	RequestCanceled   = NewKind("RequestCanceled", RuntimeFault, WithCode(CodeCanceled))
	SystemError       = NewKind("SystemError", RuntimeFault,
		WithFields(Field("reason", TypeString)))
	SecurityError = NewKind("SecurityError", RuntimeFault, WithCode(CodeForbidden))
	NoPermission  = NewKind("NoPermission", SecurityError,
		WithFields(OptionalField("object", TypeMoRef), Field("privilegeId", TypeString)))
	NotAuthenticated = NewKind("NotAuthenticated", NoPermission, WithCode(CodeUnauthorized))
)

// Property collector faults.
var (
	InvalidProperty = NewKind("InvalidProperty", MethodFault,
		WithCode(CodeInvalidInput),
		WithFields(Field("name", TypeString)))
	InvalidCollectorVersion = NewKind("InvalidCollectorVersion", MethodFault, WithCode(CodeConflict))
)

// Inventory, session and state faults.
var (
	ConcurrentAccess = NewKind("ConcurrentAccess", VimFault, WithCode(CodeConflict))
	AlreadyExists    = NewKind("AlreadyExists", VimFault,
		WithCode(CodeAlreadyExists),
		WithFields(OptionalField("name", TypeString)))
	DuplicateName = NewKind("DuplicateName", VimFault,
		WithCode(CodeAlreadyExists),
		WithFields(Field("name", TypeString), Field("object", TypeMoRef)))
	InvalidName = NewKind("InvalidName", VimFault,
		WithCode(CodeInvalidInput),
		WithFields(Field("name", TypeString), OptionalField("entity", TypeMoRef)))
	NotFound         = NewKind("NotFound", VimFault, WithCode(CodeNotFound))
	InvalidLogin     = NewKind("InvalidLogin", VimFault, WithCode(CodeUnauthorized))
	InvalidLocale    = NewKind("InvalidLocale", VimFault, WithCode(CodeInvalidInput))
	InvalidPrivilege = NewKind("InvalidPrivilege", VimFault,
		WithCode(CodeInvalidInput),
		WithFields(Field("privilege", TypeString)))
	UserNotFound = NewKind("UserNotFound", VimFault,
		WithCode(CodeNotFound),
		WithFields(Field("principal", TypeString), Field("unresolved", TypeBool)))
	InvalidState      = NewKind("InvalidState", VimFault, WithCode(CodeInvalidState))
	InvalidPowerState = NewKind("InvalidPowerState", InvalidState,
		WithFields(OptionalField("requestedState", TypeString), Field("existingState", TypeString)))
	InvalidHostState = NewKind("InvalidHostState", InvalidState,
		WithFields(OptionalField("host", TypeMoRef)))
	TaskInProgress = NewKind("TaskInProgress", VimFault,
		WithCode(CodeConflict),
		WithFields(Field("task", TypeMoRef)))
	ResourceInUse = NewKind("ResourceInUse", VimFault,
		WithCode(CodeConflict),
		WithFields(OptionalField("type", TypeString), OptionalField("name", TypeString)))
	Timedout = NewKind("Timedout", VimFault, WithCode(CodeTimeout))
)

// Capacity and host connectivity faults.
var (
	InsufficientResourcesFault = NewKind("InsufficientResourcesFault", VimFault,
		WithCode(CodeResourceExhausted))
	InsufficientHostCapacityFault = NewKind("InsufficientHostCapacityFault", InsufficientResourcesFault,
		WithFields(OptionalField("host", TypeMoRef)))
	InsufficientMemoryResourcesFault = NewKind("InsufficientMemoryResourcesFault", InsufficientResourcesFault,
		WithFields(Field("unreserved", TypeInt), Field("requested", TypeInt)))
	HostConnectFault = NewKind("HostConnectFault", VimFault, WithCode(CodeNetwork))
	NoHost           = NewKind("NoHost", HostConnectFault,
		WithFields(OptionalField("name", TypeString)))
)

// Configuration faults.
var (
	HostConfigFault   = NewKind("HostConfigFault", VimFault, WithCode(CodeInvalidConfig))
	VmConfigFault     = NewKind("VmConfigFault", VimFault, WithCode(CodeInvalidConfig))
	InvalidVmConfig   = NewKind("InvalidVmConfig", VmConfigFault, WithFields(OptionalField("property", TypeString)))
	InvalidDeviceSpec = NewKind("InvalidDeviceSpec", InvalidVmConfig, WithFields(Field("deviceIndex", TypeInt)))
)

// Datastore and file faults.
var (
	InvalidDatastore = NewKind("InvalidDatastore", VimFault,
		WithCode(CodeInvalidInput),
		WithFields(OptionalField("datastore", TypeMoRef), OptionalField("name", TypeString)))
	InvalidDatastorePath = NewKind("InvalidDatastorePath", InvalidDatastore,
		WithFields(Field("datastorePath", TypeString)))
	FileFault = NewKind("FileFault", VimFault,
		WithCode(CodeFileSystem),
		WithFields(Field("file", TypeString)))
	FileAlreadyExists = NewKind("FileAlreadyExists", FileFault, WithCode(CodeAlreadyExists))
	FileNotFound      = NewKind("FileNotFound", FileFault, WithCode(CodeNotFound))
	CannotCreateFile  = NewKind("CannotCreateFile", FileFault)
	CannotDeleteFile  = NewKind("CannotDeleteFile", FileFault)
	FileLocked        = NewKind("FileLocked", FileFault, WithCode(CodeConflict))
	NoDiskSpace       = NewKind("NoDiskSpace", FileFault,
		WithCode(CodeResourceExhausted),
		WithFields(Field("datastore", TypeString)))
)

// Guest operation faults.
var (
	GuestOperationsFault       = NewKind("GuestOperationsFault", VimFault, WithCode(CodeGuest))
	GuestPermissionDenied      = NewKind("GuestPermissionDenied", GuestOperationsFault, WithCode(CodeForbidden))
	GuestOperationsUnavailable = NewKind("GuestOperationsUnavailable", GuestOperationsFault,
		WithDefaultClassification(ClassificationRetryable))
	ToolsUnavailable = NewKind("ToolsUnavailable", VimFault, WithCode(CodeGuest))
)

// Synthetic kinds. They are not part of any registry and never resolve from
// a wire name.
var (
	// UnknownFault is bound when the wire name is not in the registry.
	UnknownFault = NewKind("UnknownFault", MethodFault, WithWireName(""), WithCode(CodeUnknown))

	// MalformedFault is bound when the transport could not decode the detail at all.
	MalformedFault = NewKind("MalformedFault", MethodFault, WithWireName(""), WithCode(CodeMalformed))
)

// builtinKinds lists every catalog kind in registration order.
var builtinKinds = []*Kind{
	MethodFault, RuntimeFault, VimFault,

	ManagedObjectNotFound, InvalidArgument, InvalidRequest, InvalidType, MethodNotFound,
	NotSupported, NotImplemented, HostCommunication, RequestCanceled, SystemError,
	SecurityError, NoPermission, NotAuthenticated,

	InvalidProperty, InvalidCollectorVersion,

	ConcurrentAccess, AlreadyExists, DuplicateName, InvalidName, NotFound, InvalidLogin,
	InvalidLocale, InvalidPrivilege, UserNotFound, InvalidState, InvalidPowerState,
	InvalidHostState, TaskInProgress, ResourceInUse, Timedout,

	InsufficientResourcesFault, InsufficientHostCapacityFault, InsufficientMemoryResourcesFault,
	HostConnectFault, NoHost,

	HostConfigFault, VmConfigFault, InvalidVmConfig, InvalidDeviceSpec,

	InvalidDatastore, InvalidDatastorePath, FileFault, FileAlreadyExists, FileNotFound,
	CannotCreateFile, CannotDeleteFile, FileLocked, NoDiskSpace,

	GuestOperationsFault, GuestPermissionDenied, GuestOperationsUnavailable, ToolsUnavailable,
}

// Typed keys for detail fields shared by several kinds.
var (
	KeyFile            = NewKey[string]("file")
	KeyName            = NewKey[string]("name")
	KeyObj             = NewKey[MoRef]("obj")
	KeyObject          = NewKey[MoRef]("object")
	KeyPrivilegeID     = NewKey[string]("privilegeId")
	KeyInvalidProperty = NewKey[string]("invalidProperty")
	KeyTask            = NewKey[MoRef]("task")
	KeyHost            = NewKey[MoRef]("host")
	KeyExistingState   = NewKey[string]("existingState")
	KeyReason          = NewKey[string]("reason")
)

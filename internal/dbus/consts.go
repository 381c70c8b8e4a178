package dbus

// Standard D-Bus method names
const (
	DBUS_INTERFACE = "org.freedesktop.DBus"

	INTROSPECTABLE  = DBUS_INTERFACE + ".Introspectable"
	BUS_LIST_NAMES  = DBUS_INTERFACE + ".ListNames"
	DBUS_PROP_IFACE = DBUS_INTERFACE + ".Properties"
	INTROSPECT_CALL = INTROSPECTABLE + ".Introspect"

	PROP_GET     = DBUS_PROP_IFACE + ".Get"
	PROP_SET     = DBUS_PROP_IFACE + ".Set"
	PROP_GET_ALL = DBUS_PROP_IFACE + ".GetAll"
)

// Well-known D-Bus error names, used to classify failed calls.
const (
	DBUS_ERROR_PREFIX = DBUS_INTERFACE + ".Error."

	ERR_SERVICE_UNKNOWN   = DBUS_ERROR_PREFIX + "ServiceUnknown"
	ERR_NAME_HAS_NO_OWNER = DBUS_ERROR_PREFIX + "NameHasNoOwner"
	ERR_DISCONNECTED      = DBUS_ERROR_PREFIX + "Disconnected"
	ERR_NO_SERVER         = DBUS_ERROR_PREFIX + "NoServer"
	ERR_NO_REPLY          = DBUS_ERROR_PREFIX + "NoReply"
	ERR_TIMEOUT           = DBUS_ERROR_PREFIX + "Timeout"
	ERR_TIMED_OUT         = DBUS_ERROR_PREFIX + "TimedOut"
	ERR_UNKNOWN_METHOD    = DBUS_ERROR_PREFIX + "UnknownMethod"
)

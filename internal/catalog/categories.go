package catalog

// UncategorizedLabel marks groups whose id is not in the category table.
// They are kept and probed; only the label is unknown.
const UncategorizedLabel = "Uncategorized"

// categoryNames maps the stable endpoint-set ids published by the metadata
// service to the labels shown in the report. Configuration data, not logic.
var categoryNames = map[int]string{
	163: "Intune client and host services",
	164: "Remote Help",
	170: "Scripts & Win32 Apps",
	172: "Push notifications (WNS)",
	173: "Windows Autopilot",
	178: "Device health attestation",
	179: "TPM attestation",
	181: "Delivery Optimization",
	182: "Authentication dependencies",
	186: "Telemetry and diagnostics",
}

// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Drive API - these keys locate the offline download endpoint and its target folder.
const (
	DriveEndpoint = "drive.endpoint"
	DriveParentID = "drive.parent_id"
)

// Submission - these keys govern the pacing of the batch runner.
const (
	SubmitDelay = "submit.delay"
)

// Task Lists - these keys locate the operator-edited task list and the failure list written after a run.
const (
	TasksFile   = "tasks.file"
	FailedWrite = "failed.write"
)

// Network - these keys tune the shared HTTP transport.
const (
	NetworkTimeout   = "network.timeout"
	NetworkProxy     = "network.proxy"
	NetworkUserAgent = "network.user_agent"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the command-line behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

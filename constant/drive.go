package constant

// Offline download literals - these values are dictated by the drive API and relayed verbatim.
const (
	// DriveFilesEndpoint is the endpoint accepting offline download (URL upload) requests.
	DriveFilesEndpoint = "https://api-drive.mypikpak.com/drive/v1/files"

	// KindFile is the "kind" discriminator of a file creation request.
	KindFile = "drive#file"

	// UploadTypeURL marks a file creation request as an upload by URL.
	UploadTypeURL = "UPLOAD_TYPE_URL"

	// MagnetPrefix is the mandatory prefix of every submitted magnet link.
	MagnetPrefix = "magnet:?"

	// TokenKey is the credential store key holding the drive bearer token.
	TokenKey = "access_token"
)

// Report literals - console output is consumed by people copying failures back into a task list.
const (
	// PlaceholderName is the format used to name tasks supplied without a name, 1-indexed.
	PlaceholderName = "任务%d"

	// ReasonPrefix starts the annotation line of a rendered failure block.
	ReasonPrefix = "原因: "
)

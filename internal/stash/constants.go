package stash

type commonHeaders struct {
	authorization string
	acl           string
	contentType   string
	date          string
	contentHash   string
}

var header = commonHeaders{
	authorization: "Authorization",
	acl:           "X-Amz-Acl",
	contentType:   "Content-Type",
	date:          "X-Amz-Date",
	contentHash:   "X-Amz-Content-Sha256",
}

const (
	// EmptyHash is the hex encoded SHA256 value of an empty string.
	EmptyHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	// UnsignedPayload indicates that the request payload body is unsigned.
	UnsignedPayload = "UNSIGNED-PAYLOAD"

	// TimeFormat is the time format to be used in the X-Amz-Date header.
	TimeFormat = "20060102T150405Z"

	// DateFormat is the shorten time format used in the credential scope.
	DateFormat = "20060102"

	// SignAlgorithm represents the default hash algorithm.
	SignAlgorithm = "AWS4-HMAC-SHA256"

	// ContentType is the fixed content type attached after signing.
	ContentType = "application/x-www-form-urlencoded; charset=utf-8"

	// DefaultEndpoint is used when no endpoint is configured.
	DefaultEndpoint = "s3.amazonaws.com"

	// DefaultRegion is used when no region is configured.
	DefaultRegion = "eu-west-1"
)

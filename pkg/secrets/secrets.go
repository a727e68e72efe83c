package secrets

// Status is a provider outcome code. Zero means success; every other value
// is a provider-specific failure code.
type Status int32

// Named codes mirror Security framework OSStatus values, so the native
// macOS provider passes codes through unchanged and the portable providers
// speak the same vocabulary.
const (
	StatusSuccess       Status = 0
	StatusIO            Status = -36
	StatusParam         Status = -50
	StatusDuplicateItem Status = -25299
	StatusItemNotFound  Status = -25300
)

func (s Status) OK() bool { return s == StatusSuccess }

// Provider is the minimal capability surface of a secure storage backend.
// Implementations own persistence, encryption and access control; the
// adapter only translates calls and maps statuses.
type Provider interface {
	Delete(service, key string) Status
	Insert(service, key string, value []byte) Status
	QueryOne(service, key string, wantData bool) (Status, []byte)
	UpdateAttributes(service, key string, value []byte) Status
}

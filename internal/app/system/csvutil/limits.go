// internal/app/system/csvutil/limits.go
package csvutil

// Upload size and row limits for catalog CSV processing. The reference
// catalog is hundreds to low thousands of rows; the caps guard against
// accidental uploads of the wrong file.
const (
	MaxUploadSize = 5 << 20 // 5 MB
	MaxRows       = 20000
)

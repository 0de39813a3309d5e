package decode

// SaveFormat names an output pixel layout for the external encoders this
// core does not implement (BMP, TGA, JPEG, PNG, TIFF, QOI, WebP); the
// parameter shapes live here so callers and the external encoders agree
// on them without this package owning the encode step.
type SaveFormat int

const (
	SaveFormatInvalid SaveFormat = iota
	SaveFormatBPP24
	SaveFormatBPP32
	SaveFormatBPP24_BPC16
	SaveFormatBPP48_BPC16
	SaveFormatAuto
)

// SaveCompression selects a lossless-encoder compression strategy.
type SaveCompression int

const (
	SaveCompressionNone SaveCompression = iota
	SaveCompressionRLE
)

// SaveParams is the parameter shape callers pass to an external image
// encoder. texcore only defines the fields; no package here implements
// BMP/TGA/JPEG/PNG/TIFF/QOI/WebP encoding.
type SaveParams struct {
	Format                  SaveFormat
	Quality                 int // 1..100, JPEG/WebP lossy quality
	Compression             SaveCompression
	Lossy                   bool
	QualityCompStr          int // 0..100, WebP lossless compression effort
	OverrideFrameDurationMs int
}

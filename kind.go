package fileformat

// Kind is the broad family a file format belongs to. Every format in the
// catalog maps to exactly one kind.
type Kind int

const (
	// KindApplication covers archives, executables, documents, databases
	// and other formats that do not fit a narrower family.
	KindApplication Kind = iota

	// KindAudio covers sound and music formats.
	KindAudio

	// KindFont covers font formats.
	KindFont

	// KindImage covers raster and vector image formats.
	KindImage

	// KindModel covers 3D model formats.
	KindModel

	// KindText covers plain and structured text formats.
	KindText

	// KindVideo covers video and multiplexed audio/video containers.
	KindVideo
)

// String returns the kind name, e.g. "Image".
func (k Kind) String() string {
	switch k {
	case KindApplication:
		return "Application"
	case KindAudio:
		return "Audio"
	case KindFont:
		return "Font"
	case KindImage:
		return "Image"
	case KindModel:
		return "Model"
	case KindText:
		return "Text"
	case KindVideo:
		return "Video"
	default:
		return "Unknown"
	}
}

package fileformat

// FileFormat identifies a recognized file format. The zero value is
// ArbitraryBinaryData, which is also what classification returns when
// content matches no known signature.
//
// Every FileFormat resolves to a media type and a preferred extension
// through its accessors. Neither string is unique on its own: several
// formats legitimately share an extension or a media type, so the
// FileFormat value itself is the identity.
type FileFormat int

// Recognized formats, named after the format's full name.
const (
	// ArbitraryBinaryData is the fallback for unrecognized content.
	ArbitraryBinaryData FileFormat = iota

	AdaptiveMultiRate
	AdobeInDesignDocument
	AdobePhotoshopDocument
	AdvancedAudioCoding
	AnimatedPortableNetworkGraphics
	AppleDiskImage
	AppleIconImage
	AppleItunesAudio
	AppleItunesVideo
	AppleQuickTime
	Au
	AudioCodec3
	AudioInterchangeFileFormat
	AudioVideoInterleave
	AV1ImageFileFormat
	BetterPortableGraphics
	Blender
	Bzip2
	Cabinet
	Cineon
	DalvikExecutable
	DebianBinaryPackage
	DigitalImagingAndCommunicationsInMedicine
	DigitalPictureExchange
	ElectronicPublication
	EmbeddedOpenType
	ExecutableAndLinkableFormat
	ExperimentalComputingFacility
	ExtensibleArchive
	FlashVideo
	FlexibleImageTransportSystem
	FreeLosslessAudioCodec
	FreeLosslessImageFormat
	GameBoyAdvanceROM
	GameBoyColorROM
	GameBoyROM
	GLTransmissionFormatBinary
	GoogleChromeExtension
	GraphicsInterchangeFormat
	Gzip
	HighEfficiencyImageCoding
	ISO9660
	JavaClass
	JointPhotographicExpertsGroup
	JPEG2000Part1
	JPEGExtendedRange
	JPEGXL
	KhronosTexture
	KhronosTexture2
	LongRangeZIP
	LZ4
	Lzip
	Lzop
	MaterialExchangeFormat
	MatroskaVideo
	MicrosoftSoftwareInstaller
	Mobipocket
	MonkeysAudio
	MPEG1Video
	MPEG12AudioLayer3
	MPEG2TransportStream
	MPEG4Part14Video
	MSDOSExecutable
	Musepack
	MusicalInstrumentDigitalInterface
	Nintendo64ROM
	NintendoDSROM
	NintendoEntertainmentSystemROM
	OggFLAC
	OggMedia
	OggMultiplexedMedia
	OggOpus
	OggSpeex
	OggTheora
	OggVorbis
	OlympusRawFormat
	OpenDocumentGraphics
	OpenDocumentPresentation
	OpenDocumentSpreadsheet
	OpenDocumentText
	OpenEXR
	OpenType
	PCAPDump
	PCAPNextGenerationDump
	PortableDocumentFormat
	PortableNetworkGraphics
	RedHatPackageManager
	RoshalArchive
	SevenZip
	Shapefile
	SketchUp
	SmallWebFormat
	SQLite3
	TagImageFileFormat
	TapeArchive
	ThirdGenerationPartnershipProject
	ThirdGenerationPartnershipProject2
	TrueType
	UnixArchiver
	UnixCompress
	VirtualBoxVirtualDiskImage
	WaveformAudio
	WavPack
	WebAssemblyBinary
	WebM
	WebOpenFontFormat
	WebOpenFontFormat2
	WebP
	WindowsBitmap
	WindowsIcon
	WindowsMediaVideo
	WindowsMetafile
	WindowsShortcut
	XZ
	Zip
	Zstandard

	formatCount
)

// Name returns the full format name, e.g. "Portable Network Graphics".
func (f FileFormat) Name() string {
	return f.info().name
}

// ShortName returns the common abbreviation, e.g. "PNG". It is empty for
// formats without an established one.
func (f FileFormat) ShortName() string {
	return f.info().shortName
}

// MediaType returns the format's media type, e.g. "image/png". The value
// is a stable, lower-case ASCII string.
func (f FileFormat) MediaType() string {
	return f.info().mediaType
}

// Extension returns the preferred file extension without the leading dot,
// e.g. "png". The value is a stable, lower-case ASCII string.
func (f FileFormat) Extension() string {
	return f.info().extension
}

// Kind returns the broad family the format belongs to.
func (f FileFormat) Kind() Kind {
	return f.info().kind
}

// String returns the full format name.
func (f FileFormat) String() string {
	return f.Name()
}

// info resolves the catalog entry. Out-of-range values resolve to the
// fallback entry so accessors stay total.
func (f FileFormat) info() *formatInfo {
	if f < 0 || f >= formatCount {
		f = ArbitraryBinaryData
	}
	return &formatInfos[f]
}

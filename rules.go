package fileformat

// signatureRules is the signature database. It is built once and never
// mutated; classification walks it in declaration order and returns the
// first matching rule, so order encodes precedence.
//
// Rules are grouped by total signature byte count, longest first. A short
// generic pattern (ZIP local header, OggS, RIFF, a lone MZ) therefore only
// wins after every longer rule sharing its prefix context has been ruled
// out. Reordering entries changes results; the literal cases in
// detect_test.go pin the families where this matters.
var signatureRules = []signatureRule{
	// 59-byte signatures
	{OpenDocumentPresentation, []signature{
		sig(part(0, "\x50\x4B\x03\x04"), part(30, "mimetype"), part(38, "application/vnd.oasis.opendocument.presentation")),
	}},

	// 58-byte signatures
	{OpenDocumentSpreadsheet, []signature{
		sig(part(0, "\x50\x4B\x03\x04"), part(30, "mimetype"), part(38, "application/vnd.oasis.opendocument.spreadsheet")),
	}},

	// 55-byte signatures
	{OpenDocumentGraphics, []signature{
		sig(part(0, "\x50\x4B\x03\x04"), part(30, "mimetype"), part(38, "application/vnd.oasis.opendocument.graphics")),
	}},

	// 51-byte signatures
	{OpenDocumentText, []signature{
		sig(part(0, "\x50\x4B\x03\x04"), part(30, "mimetype"), part(38, "application/vnd.oasis.opendocument.text")),
	}},

	// 39-byte signatures
	{VirtualBoxVirtualDiskImage, []signature{
		sig(part(0, "<<< Oracle VM VirtualBox Disk Image >>>")),
	}},

	// 32-byte signatures
	{ElectronicPublication, []signature{
		sig(part(0, "\x50\x4B\x03\x04"), part(30, "mimetype"), part(38, "application/epub+zip")),
	}},
	{SketchUp, []signature{
		sig(
			part(0, "\xFF\xFE\xFF\x0E\x53\x00\x6B\x00\x65\x00\x74\x00\x63\x00\x68\x00"),
			part(16, "\x55\x00\x70\x00\x20\x00\x4D\x00\x6F\x00\x64\x00\x65\x00\x6C\x00"),
		),
	}},

	// 21-byte signatures
	{DebianBinaryPackage, []signature{
		sig(part(0, "\x21\x3C\x61\x72\x63\x68\x3E\x0A"), part(8, "debian-binary")),
	}},

	// 16-byte signatures
	{SQLite3, []signature{
		sig(part(0, "\x53\x51\x4C\x69\x74\x65\x20\x66\x6F\x72\x6D\x61\x74\x20\x33\x00")),
	}},
	{AdobeInDesignDocument, []signature{
		sig(part(0, "\x06\x06\xED\xF5\xD8\x1D\x46\xE5\xBD\x31\xEF\xE7\xFE\x74\xB7\x1D")),
	}},

	// 14-byte signatures
	{MaterialExchangeFormat, []signature{
		sig(part(0, "\x06\x0E\x2B\x34\x02\x05\x01\x01\x0D\x01\x02\x01\x01\x02")),
	}},

	// 12-byte signatures
	{OggOpus, []signature{
		sig(part(0, "OggS"), part(28, "OpusHead")),
	}},
	{AnimatedPortableNetworkGraphics, []signature{
		sig(part(0, "\x89\x50\x4E\x47\x0D\x0A\x1A\x0A"), part(0x25, "acTL")),
	}},
	{JointPhotographicExpertsGroup, []signature{
		sig(part(0, "\xFF\xD8\xFF\xE0\x00\x10\x4A\x46\x49\x46\x00\x01")),
		sig(part(0, "\xFF\xD8\xFF\xE1"), part(6, "\x45\x78\x69\x66\x00\x00")),
		sig(part(0, "\xFF\xD8\xFF\xDB")),
		sig(part(0, "\xFF\xD8\xFF\xEE")),
	}},
	{JPEGXL, []signature{
		sig(part(0, "\x00\x00\x00\x0C\x4A\x58\x4C\x20\x0D\x0A\x87\x0A")),
		sig(part(0, "\xFF\x0A")),
	}},
	{KhronosTexture, []signature{
		sig(part(0, "\xAB\x4B\x54\x58\x20\x31\x31\xBB\x0D\x0A\x1A\x0A")),
	}},
	{KhronosTexture2, []signature{
		sig(part(0, "\xAB\x4B\x54\x58\x20\x32\x30\xBB\x0D\x0A\x1A\x0A")),
	}},
	{MatroskaVideo, []signature{
		sig(part(0, "\x1A\x45\xDF\xA3"), part(24, "matroska")),
	}},

	// 10-byte signatures
	{OggVorbis, []signature{
		sig(part(0, "OggS"), part(29, "vorbis")),
	}},
	{FlexibleImageTransportSystem, []signature{
		sig(part(0, "\x53\x49\x4D\x50\x4C\x45\x20\x20\x3D\x20")),
	}},
	{OggTheora, []signature{
		sig(part(0, "OggS"), part(29, "theora")),
	}},
	{AppleQuickTime, []signature{
		sig(part(0, "\x00\x00\x00\x14"), part(4, "ftypqt")),
	}},
	{WindowsMediaVideo, []signature{
		sig(part(0, "\x30\x26\xB2\x75\x8E\x66\xCF\x11\xA6\xD9")),
	}},

	// 9-byte signatures
	{GameBoyColorROM, []signature{
		sig(part(0x104, "\xCE\xED\x66\x66\xCC\x0D\x00\x0B"), part(0x143, "\x80")),
		sig(part(0x104, "\xCE\xED\x66\x66\xCC\x0D\x00\x0B"), part(0x143, "\xC0")),
	}},
	{Lzop, []signature{
		sig(part(0, "\x89\x4C\x5A\x4F\x00\x0D\x0A\x1A\x0A")),
	}},
	{OggSpeex, []signature{
		sig(part(0, "OggS"), part(28, "Speex")),
	}},
	{OlympusRawFormat, []signature{
		sig(part(0, "\x49\x49\x52\x4F\x08\x00\x00\x00\x18")),
	}},
	{OggMedia, []signature{
		sig(part(0, "OggS"), part(29, "video")),
	}},

	// 8-byte signatures
	{RoshalArchive, []signature{
		sig(part(0, "\x52\x61\x72\x21\x1A\x07\x01\x00")),
		sig(part(0, "\x52\x61\x72\x21\x1A\x07\x00")),
	}},
	{GameBoyROM, []signature{
		sig(part(0x104, "\xCE\xED\x66\x66\xCC\x0D\x00\x0B")),
	}},
	{GameBoyAdvanceROM, []signature{
		sig(part(4, "\x24\xFF\xAE\x51\x69\x9A\xA2\x21")),
	}},
	{Mobipocket, []signature{
		sig(part(60, "BOOKMOBI")),
	}},
	{WindowsShortcut, []signature{
		sig(part(0, "\x4C\x00\x00\x00\x01\x14\x02\x00")),
	}},
	{Nintendo64ROM, []signature{
		sig(part(0, "\x80\x37\x12\x40\x00\x00\x00\x0F")),
		sig(part(0, "\x37\x80\x40\x12\x00\x00\x0F\x00")),
		sig(part(0, "\x12\x40\x80\x37\x00\x0F\x00\x00")),
		sig(part(0, "\x40\x12\x37\x80\x0F\x00\x00\x00")),
	}},
	{NintendoDSROM, []signature{
		sig(part(0xC0, "\x24\xFF\xAE\x51\x69\x9A\xA2\x21")),
		sig(part(0xC0, "\xC8\x60\x4F\xE2\x01\x70\x8F\xE2")),
	}},
	{MicrosoftSoftwareInstaller, []signature{
		sig(part(0, "\xD0\xCF\x11\xE0\xA1\xB1\x1A\xE1")),
	}},
	{TapeArchive, []signature{
		sig(part(257, "\x75\x73\x74\x61\x72\x00\x30\x30")),
		sig(part(257, "\x75\x73\x74\x61\x72\x20\x20\x00")),
	}},
	{AudioInterchangeFileFormat, []signature{
		sig(part(0, "FORM"), part(8, "AIFF")),
	}},
	{OggFLAC, []signature{
		sig(part(0, "OggS"), part(29, "FLAC")),
	}},
	{WaveformAudio, []signature{
		sig(part(0, "RIFF"), part(8, "WAVE")),
	}},
	{AV1ImageFileFormat, []signature{
		sig(part(4, "ftypavif")),
	}},
	{HighEfficiencyImageCoding, []signature{
		sig(part(4, "ftypheic")),
		sig(part(4, "ftypheix")),
	}},
	{PortableNetworkGraphics, []signature{
		sig(part(0, "\x89\x50\x4E\x47\x0D\x0A\x1A\x0A")),
	}},
	{WebP, []signature{
		sig(part(0, "RIFF"), part(8, "WEBP")),
	}},
	{ExperimentalComputingFacility, []signature{
		sig(part(0, "gimp xcf")),
	}},
	{AudioVideoInterleave, []signature{
		sig(part(0, "RIFF"), part(8, "\x41\x56\x49\x20")),
	}},
	{MPEG4Part14Video, []signature{
		sig(part(4, "ftypavc1")),
		sig(part(4, "ftypdash")),
		sig(part(4, "ftypiso2")),
		sig(part(4, "ftypiso3")),
		sig(part(4, "ftypiso4")),
		sig(part(4, "ftypiso5")),
		sig(part(4, "ftypiso6")),
		sig(part(4, "ftypisom")),
		sig(part(4, "ftypmmp4")),
		sig(part(4, "ftypmp41")),
		sig(part(4, "ftypmp42")),
		sig(part(4, "ftypmp4v")),
		sig(part(4, "ftypmp71")),
		sig(part(4, "ftypMSNV")),
		sig(part(4, "ftypNDAS")),
		sig(part(4, "ftypNDSC")),
		sig(part(4, "ftypNDSH")),
		sig(part(4, "ftypNDSM")),
		sig(part(4, "ftypNDSP")),
		sig(part(4, "ftypNDSS")),
		sig(part(4, "ftypNDXC")),
		sig(part(4, "ftypNDXH")),
		sig(part(4, "ftypNDXM")),
		sig(part(4, "ftypNDXP")),
		sig(part(4, "ftypF4V")),
		sig(part(4, "ftypF4P")),
	}},
	{WebM, []signature{
		sig(part(0, "\x1A\x45\xDF\xA3"), part(24, "webm")),
	}},

	// 7-byte signatures
	{UnixArchiver, []signature{
		sig(part(0, "!<arch>")),
	}},
	{Blender, []signature{
		sig(part(0, "BLENDER")),
	}},
	{AppleItunesAudio, []signature{
		sig(part(4, "ftypM4A")),
	}},
	{JPEG2000Part1, []signature{
		sig(part(16, "ftypjp2")),
	}},
	{ThirdGenerationPartnershipProject, []signature{
		sig(part(4, "ftyp3gp")),
	}},
	{ThirdGenerationPartnershipProject2, []signature{
		sig(part(4, "ftyp3g2")),
	}},
	{AppleItunesVideo, []signature{
		sig(part(4, "ftypM4V")),
	}},

	// 6-byte signatures
	{SevenZip, []signature{
		sig(part(0, "\x37\x7A\xBC\xAF\x27\x1C")),
	}},
	{XZ, []signature{
		sig(part(0, "\xFD\x37\x7A\x58\x5A\x00")),
	}},
	{GraphicsInterchangeFormat, []signature{
		sig(part(0, "GIF87a")),
		sig(part(0, "GIF89a")),
	}},

	// 5-byte signatures
	{PortableDocumentFormat, []signature{
		sig(part(0, "%PDF-")),
	}},
	{EmbeddedOpenType, []signature{
		sig(part(8, "\x00\x00\x01"), part(34, "\x4C\x50")),
		sig(part(8, "\x01\x00\x02"), part(34, "\x4C\x50")),
		sig(part(8, "\x02\x00\x02"), part(34, "\x4C\x50")),
	}},
	{ISO9660, []signature{
		sig(part(0x8001, "CD001")),
		sig(part(0x8801, "CD001")),
		sig(part(0x9001, "CD001")),
	}},
	{AdaptiveMultiRate, []signature{
		sig(part(0, "#!AMR")),
	}},
	{OpenType, []signature{
		sig(part(0, "\x4F\x54\x54\x4F\x00")),
	}},
	{TrueType, []signature{
		sig(part(0, "\x00\x01\x00\x00\x00")),
	}},

	// 4-byte signatures
	{DigitalImagingAndCommunicationsInMedicine, []signature{
		sig(part(128, "\x44\x49\x43\x4D")),
	}},
	{JavaClass, []signature{
		sig(part(0, "\xCA\xFE\xBA\xBE")),
	}},
	{OggMultiplexedMedia, []signature{
		sig(part(0, "OggS")),
	}},
	{DalvikExecutable, []signature{
		sig(part(0, "\x64\x65\x78\x0A")),
	}},
	{Cabinet, []signature{
		sig(part(0, "MSCF")),
		sig(part(0, "ISc(")),
	}},
	{PCAPDump, []signature{
		sig(part(0, "\xA1\xB2\xC3\xD4")),
		sig(part(0, "\xD4\xC3\xB2\xA1")),
	}},
	{WebAssemblyBinary, []signature{
		sig(part(0, "\x00\x61\x73\x6D")),
	}},
	{Shapefile, []signature{
		sig(part(0, "\x00\x00\x27\x0A")),
	}},
	{ExecutableAndLinkableFormat, []signature{
		sig(part(0, "\x7F\x45\x4C\x46")),
	}},
	{GoogleChromeExtension, []signature{
		sig(part(0, "Cr24")),
	}},
	{LongRangeZIP, []signature{
		sig(part(0, "LRZI")),
	}},
	{LZ4, []signature{
		sig(part(0, "\x04\x22\x4D\x18")),
	}},
	{Lzip, []signature{
		sig(part(0, "LZIP")),
	}},
	{NintendoEntertainmentSystemROM, []signature{
		sig(part(0, "\x4E\x45\x53\x1A")),
	}},
	{PCAPNextGenerationDump, []signature{
		sig(part(0, "\x0A\x0D\x0D\x0A")),
	}},
	{RedHatPackageManager, []signature{
		sig(part(0, "\xED\xAB\xEE\xDB")),
	}},
	{ExtensibleArchive, []signature{
		sig(part(0, "xar!")),
	}},
	{Zip, []signature{
		sig(part(0, "\x50\x4B\x03\x04")),
		sig(part(0, "\x50\x4B\x05\x06")),
		sig(part(0, "\x50\x4B\x07\x08")),
	}},
	{Zstandard, []signature{
		sig(part(0, "\x28\xB5\x2F\xFD")),
	}},
	{Au, []signature{
		sig(part(0, ".snd")),
	}},
	{MusicalInstrumentDigitalInterface, []signature{
		sig(part(0, "MThd")),
	}},
	{WavPack, []signature{
		sig(part(0, "wvpk")),
	}},
	{MonkeysAudio, []signature{
		sig(part(0, "MAC ")),
	}},
	{FreeLosslessAudioCodec, []signature{
		sig(part(0, "fLaC")),
	}},
	{Musepack, []signature{
		sig(part(0, "MPCK")),
		sig(part(0, "MP+")),
	}},
	{WebOpenFontFormat, []signature{
		sig(part(0, "wOFF")),
	}},
	{WebOpenFontFormat2, []signature{
		sig(part(0, "wOF2")),
	}},
	{BetterPortableGraphics, []signature{
		sig(part(0, "\x42\x50\x47\xFB")),
	}},
	{Cineon, []signature{
		sig(part(0, "\x80\x2A\x5F\xD7")),
	}},
	{FreeLosslessImageFormat, []signature{
		sig(part(0, "FLIF")),
	}},
	{AppleIconImage, []signature{
		sig(part(0, "icns")),
	}},
	{TagImageFileFormat, []signature{
		sig(part(0, "MM\x00*")),
		sig(part(0, "II*\x00")),
	}},
	{AdobePhotoshopDocument, []signature{
		sig(part(0, "8BPS")),
	}},
	{WindowsMetafile, []signature{
		sig(part(0, "\xD7\xCD\xC6\x9A")),
		sig(part(0, "\x02\x00\x09\x00")),
		sig(part(0, "\x01\x00\x09\x00")),
	}},
	{DigitalPictureExchange, []signature{
		sig(part(0, "SDPX")),
		sig(part(0, "XPDS")),
	}},
	{OpenEXR, []signature{
		sig(part(0, "\x76\x2F\x31\x01")),
	}},
	{WindowsIcon, []signature{
		sig(part(0, "\x00\x00\x01\x00")),
	}},
	{GLTransmissionFormatBinary, []signature{
		sig(part(0, "glTF")),
	}},
	{MPEG1Video, []signature{
		sig(part(0, "\x00\x00\x01\xBA")),
		sig(part(0, "\x00\x00\x01\xB3")),
	}},
	{FlashVideo, []signature{
		sig(part(0, "\x46\x4C\x56\x01")),
	}},

	// 3-byte signatures
	{Bzip2, []signature{
		sig(part(0, "BZh")),
	}},
	{SmallWebFormat, []signature{
		sig(part(0, "\x43\x57\x53")),
		sig(part(0, "\x46\x57\x53")),
	}},
	{MPEG12AudioLayer3, []signature{
		sig(part(0, "ID3")),
	}},
	{JPEGExtendedRange, []signature{
		sig(part(0, "\x49\x49\xBC")),
	}},

	// 2-byte signatures
	{Gzip, []signature{
		sig(part(0, "\x1F\x8B")),
	}},
	{AppleDiskImage, []signature{
		sig(part(0, "\x78\x01")),
	}},
	{UnixCompress, []signature{
		sig(part(0, "\x1F\xA0")),
		sig(part(0, "\x1F\x9D")),
	}},
	{MSDOSExecutable, []signature{
		sig(part(0, "MZ")),
	}},
	{AdvancedAudioCoding, []signature{
		sig(part(0, "\xFF\xF1")),
		sig(part(0, "\xFF\xF9")),
	}},
	{AudioCodec3, []signature{
		sig(part(0, "\x0B\x77")),
	}},
	{WindowsBitmap, []signature{
		sig(part(0, "BM")),
	}},
	{MPEG2TransportStream, []signature{
		sig(part(0, "\x47"), part(188, "\x47")),
		sig(part(4, "\x47"), part(196, "\x47")),
	}},
}

package fileformat

import (
	"strings"
)

// formatInfo is one catalog entry: the reference metadata for a format.
type formatInfo struct {
	name      string
	shortName string
	mediaType string
	extension string
	kind      Kind
}

// formatInfos is the catalog. Indexed by FileFormat; every value the
// classifier can return has an entry, so lookups are total.
var formatInfos = [formatCount]formatInfo{
	ArbitraryBinaryData: {"Arbitrary Binary Data", "BIN", "application/octet-stream", "bin", KindApplication},

	AdaptiveMultiRate:                         {"Adaptive Multi-Rate", "AMR", "audio/amr", "amr", KindAudio},
	AdobeInDesignDocument:                     {"Adobe InDesign Document", "INDD", "application/x-indesign", "indd", KindApplication},
	AdobePhotoshopDocument:                    {"Adobe Photoshop Document", "PSD", "image/vnd.adobe.photoshop", "psd", KindImage},
	AdvancedAudioCoding:                       {"Advanced Audio Coding", "AAC", "audio/aac", "aac", KindAudio},
	AnimatedPortableNetworkGraphics:           {"Animated Portable Network Graphics", "APNG", "image/apng", "apng", KindImage},
	AppleDiskImage:                            {"Apple Disk Image", "DMG", "application/x-apple-diskimage", "dmg", KindApplication},
	AppleIconImage:                            {"Apple Icon Image", "ICNS", "image/icns", "icns", KindImage},
	AppleItunesAudio:                          {"Apple iTunes Audio", "M4A", "audio/x-m4a", "m4a", KindAudio},
	AppleItunesVideo:                          {"Apple iTunes Video", "M4V", "video/x-m4v", "m4v", KindVideo},
	AppleQuickTime:                            {"Apple QuickTime", "MOV", "video/quicktime", "mov", KindVideo},
	Au:                                        {"Au", "", "audio/basic", "au", KindAudio},
	AudioCodec3:                               {"Audio Codec 3", "AC3", "audio/vnd.dolby.dd-raw", "ac3", KindAudio},
	AudioInterchangeFileFormat:                {"Audio Interchange File Format", "AIFF", "audio/aiff", "aif", KindAudio},
	AudioVideoInterleave:                      {"Audio Video Interleave", "AVI", "video/avi", "avi", KindVideo},
	AV1ImageFileFormat:                        {"AV1 Image File Format", "AVIF", "image/avif", "avif", KindImage},
	BetterPortableGraphics:                    {"Better Portable Graphics", "BPG", "image/bpg", "bpg", KindImage},
	Blender:                                   {"Blender", "BLEND", "application/x-blender", "blend", KindApplication},
	Bzip2:                                     {"bzip2", "BZ2", "application/x-bzip2", "bz2", KindApplication},
	Cabinet:                                   {"Cabinet", "CAB", "application/vnd.ms-cab-compressed", "cab", KindApplication},
	Cineon:                                    {"Cineon", "CIN", "image/cineon", "cin", KindImage},
	DalvikExecutable:                          {"Dalvik Executable", "DEX", "application/vnd.android.dex", "dex", KindApplication},
	DebianBinaryPackage:                       {"Debian Binary Package", "DEB", "application/vnd.debian.binary-package", "deb", KindApplication},
	DigitalImagingAndCommunicationsInMedicine: {"Digital Imaging and Communications in Medicine", "DICOM", "application/dicom", "dcm", KindApplication},
	DigitalPictureExchange:                    {"Digital Picture Exchange", "DPX", "image/x-dpx", "dpx", KindImage},
	ElectronicPublication:                     {"Electronic Publication", "EPUB", "application/epub+zip", "epub", KindApplication},
	EmbeddedOpenType:                          {"Embedded OpenType", "EOT", "application/vnd.ms-fontobject", "eot", KindApplication},
	ExecutableAndLinkableFormat:               {"Executable and Linkable Format", "ELF", "application/x-executable", "elf", KindApplication},
	ExperimentalComputingFacility:             {"Experimental Computing Facility", "XCF", "image/x-xcf", "xcf", KindImage},
	ExtensibleArchive:                         {"Extensible Archive", "XAR", "application/x-xar", "xar", KindApplication},
	FlashVideo:                                {"Flash Video", "FLV", "video/x-flv", "flv", KindVideo},
	FlexibleImageTransportSystem:              {"Flexible Image Transport System", "FITS", "image/fits", "fits", KindImage},
	FreeLosslessAudioCodec:                    {"Free Lossless Audio Codec", "FLAC", "audio/x-flac", "flac", KindAudio},
	FreeLosslessImageFormat:                   {"Free Lossless Image Format", "FLIF", "image/flif", "flif", KindImage},
	GameBoyAdvanceROM:                         {"Game Boy Advance ROM", "GBA", "application/x-gba-rom", "gba", KindApplication},
	GameBoyColorROM:                           {"Game Boy Color ROM", "GBC", "application/x-gameboy-color-rom", "gbc", KindApplication},
	GameBoyROM:                                {"Game Boy ROM", "GB", "application/x-gameboy-rom", "gb", KindApplication},
	GLTransmissionFormatBinary:                {"GL Transmission Format Binary", "GLB", "model/gltf-binary", "glb", KindModel},
	GoogleChromeExtension:                     {"Google Chrome Extension", "CRX", "application/x-google-chrome-extension", "crx", KindApplication},
	GraphicsInterchangeFormat:                 {"Graphics Interchange Format", "GIF", "image/gif", "gif", KindImage},
	Gzip:                                      {"gzip", "GZ", "application/gzip", "gz", KindApplication},
	HighEfficiencyImageCoding:                 {"High Efficiency Image Coding", "HEIC", "image/heic", "heic", KindImage},
	ISO9660:                                   {"ISO 9660", "ISO", "application/x-iso9660-image", "iso", KindApplication},
	JavaClass:                                 {"Java Class", "Class", "application/java-vm", "class", KindApplication},
	JointPhotographicExpertsGroup:             {"Joint Photographic Experts Group", "JPEG", "image/jpeg", "jpg", KindImage},
	JPEG2000Part1:                             {"JPEG 2000 Part 1", "JP2", "image/jp2", "jp2", KindImage},
	JPEGExtendedRange:                         {"JPEG Extended Range", "JXR", "image/jxr", "jxr", KindImage},
	JPEGXL:                                    {"JPEG XL", "JXL", "image/jxl", "jxl", KindImage},
	KhronosTexture:                            {"Khronos Texture", "KTX", "image/ktx", "ktx", KindImage},
	KhronosTexture2:                           {"Khronos Texture 2", "KTX2", "image/ktx2", "ktx2", KindImage},
	LongRangeZIP:                              {"Long Range ZIP", "LRZIP", "application/x-lrzip", "lrz", KindApplication},
	LZ4:                                       {"LZ4", "", "application/x-lz4", "lz4", KindApplication},
	Lzip:                                      {"lzip", "LZ", "application/x-lzip", "lz", KindApplication},
	Lzop:                                      {"lzop", "LZO", "application/x-lzop", "lzo", KindApplication},
	MaterialExchangeFormat:                    {"Material Exchange Format", "MXF", "application/mxf", "mxf", KindApplication},
	MatroskaVideo:                             {"Matroska Video", "MKV", "video/x-matroska", "mkv", KindVideo},
	MicrosoftSoftwareInstaller:                {"Microsoft Software Installer", "MSI", "application/x-ole-storage", "msi", KindApplication},
	Mobipocket:                                {"Mobipocket", "MOBI", "application/x-mobipocket-ebook", "mobi", KindApplication},
	MonkeysAudio:                              {"Monkey's Audio", "APE", "audio/x-ape", "ape", KindAudio},
	MPEG1Video:                                {"MPEG-1 Video", "MPG", "video/mpeg", "mpg", KindVideo},
	MPEG12AudioLayer3:                         {"MPEG-1/2 Audio Layer 3", "MP3", "audio/mpeg", "mp3", KindAudio},
	MPEG2TransportStream:                      {"MPEG-2 Transport Stream", "MTS", "video/mp2t", "m2ts", KindVideo},
	MPEG4Part14Video:                          {"MPEG-4 Part 14 Video", "MP4", "video/mp4", "mp4", KindVideo},
	MSDOSExecutable:                           {"MS-DOS Executable", "EXE", "application/x-msdownload", "exe", KindApplication},
	Musepack:                                  {"Musepack", "MPC", "audio/x-musepack", "mpc", KindAudio},
	MusicalInstrumentDigitalInterface:         {"Musical Instrument Digital Interface", "MIDI", "audio/midi", "mid", KindAudio},
	Nintendo64ROM:                             {"Nintendo 64 ROM", "Z64", "application/x-n64-rom", "z64", KindApplication},
	NintendoDSROM:                             {"Nintendo DS ROM", "NDS", "application/x-nintendo-ds-rom", "nds", KindApplication},
	NintendoEntertainmentSystemROM:            {"Nintendo Entertainment System ROM", "NES", "application/x-nintendo-nes-rom", "nes", KindApplication},
	OggFLAC:                                   {"Ogg FLAC", "OGA", "audio/ogg", "oga", KindAudio},
	OggMedia:                                  {"Ogg Media", "OGM", "video/ogg", "ogm", KindVideo},
	OggMultiplexedMedia:                       {"Ogg Multiplexed Media", "OGX", "application/ogg", "ogx", KindApplication},
	OggOpus:                                   {"Ogg Opus", "Opus", "audio/opus", "opus", KindAudio},
	OggSpeex:                                  {"Ogg Speex", "Speex", "audio/ogg", "spx", KindAudio},
	OggTheora:                                 {"Ogg Theora", "Theora", "video/ogg", "ogv", KindVideo},
	OggVorbis:                                 {"Ogg Vorbis", "Vorbis", "audio/ogg", "ogg", KindAudio},
	OlympusRawFormat:                          {"Olympus Raw Format", "ORF", "image/x-olympus-orf", "orf", KindImage},
	OpenDocumentGraphics:                      {"OpenDocument Graphics", "ODG", "application/vnd.oasis.opendocument.graphics", "odg", KindApplication},
	OpenDocumentPresentation:                  {"OpenDocument Presentation", "ODP", "application/vnd.oasis.opendocument.presentation", "odp", KindApplication},
	OpenDocumentSpreadsheet:                   {"OpenDocument Spreadsheet", "ODS", "application/vnd.oasis.opendocument.spreadsheet", "ods", KindApplication},
	OpenDocumentText:                          {"OpenDocument Text", "ODT", "application/vnd.oasis.opendocument.text", "odt", KindApplication},
	OpenEXR:                                   {"OpenEXR", "EXR", "image/x-exr", "exr", KindImage},
	OpenType:                                  {"OpenType", "OTF", "font/otf", "otf", KindFont},
	PCAPDump:                                  {"PCAP Dump", "PCAP", "application/vnd.tcpdump.pcap", "pcap", KindApplication},
	PCAPNextGenerationDump:                    {"PCAP Next Generation Dump", "PCAPNG", "application/x-pcapng", "pcapng", KindApplication},
	PortableDocumentFormat:                    {"Portable Document Format", "PDF", "application/pdf", "pdf", KindApplication},
	PortableNetworkGraphics:                   {"Portable Network Graphics", "PNG", "image/png", "png", KindImage},
	RedHatPackageManager:                      {"Red Hat Package Manager", "RPM", "application/x-rpm", "rpm", KindApplication},
	RoshalArchive:                             {"Roshal Archive", "RAR", "application/vnd.rar", "rar", KindApplication},
	SevenZip:                                  {"7-Zip", "7Z", "application/x-7z-compressed", "7z", KindApplication},
	Shapefile:                                 {"Shapefile", "SHP", "application/x-esri-shape", "shp", KindApplication},
	SketchUp:                                  {"SketchUp", "SKP", "application/vnd.sketchup.skp", "skp", KindApplication},
	SmallWebFormat:                            {"Small Web Format", "SWF", "application/x-shockwave-flash", "swf", KindApplication},
	SQLite3:                                   {"SQLite 3", "", "application/vnd.sqlite3", "sqlite", KindApplication},
	TagImageFileFormat:                        {"Tag Image File Format", "TIFF", "image/tiff", "tiff", KindImage},
	TapeArchive:                               {"Tape Archive", "TAR", "application/x-tar", "tar", KindApplication},
	ThirdGenerationPartnershipProject:         {"3rd Generation Partnership Project", "3GPP", "video/3gpp", "3gp", KindVideo},
	ThirdGenerationPartnershipProject2:        {"3rd Generation Partnership Project 2", "3GPP2", "video/3gpp2", "3g2", KindVideo},
	TrueType:                                  {"TrueType", "TTF", "font/ttf", "ttf", KindFont},
	UnixArchiver:                              {"UNIX archiver", "archiver", "application/x-archive", "ar", KindApplication},
	UnixCompress:                              {"UNIX compress", "compress", "application/x-compress", "z", KindApplication},
	VirtualBoxVirtualDiskImage:                {"VirtualBox Virtual Disk Image", "VDI", "application/x-virtualbox-vdi", "vdi", KindApplication},
	WaveformAudio:                             {"Waveform Audio", "WAV", "audio/vnd.wave", "wav", KindAudio},
	WavPack:                                   {"WavPack", "WV", "audio/wavpack", "wv", KindAudio},
	WebAssemblyBinary:                         {"WebAssembly Binary", "Wasm", "application/wasm", "wasm", KindApplication},
	WebM:                                      {"WebM", "", "video/webm", "webm", KindVideo},
	WebOpenFontFormat:                         {"Web Open Font Format", "WOFF", "font/woff", "woff", KindFont},
	WebOpenFontFormat2:                        {"Web Open Font Format 2", "WOFF2", "font/woff2", "woff2", KindFont},
	WebP:                                      {"WebP", "", "image/webp", "webp", KindImage},
	WindowsBitmap:                             {"Windows Bitmap", "BMP", "image/bmp", "bmp", KindImage},
	WindowsIcon:                               {"Windows Icon", "ICO", "image/x-icon", "ico", KindImage},
	WindowsMediaVideo:                         {"Windows Media Video", "WMV", "video/x-ms-asf", "wmv", KindVideo},
	WindowsMetafile:                           {"Windows Metafile", "WMF", "image/wmf", "wmf", KindImage},
	WindowsShortcut:                           {"Windows Shortcut", "LNK", "application/x-ms-shortcut", "lnk", KindApplication},
	XZ:                                        {"XZ", "", "application/x-xz", "xz", KindApplication},
	Zip:                                       {"ZIP", "", "application/zip", "zip", KindApplication},
	Zstandard:                                 {"Zstandard", "zstd", "application/zstd", "zst", KindApplication},
}

// ByExtension returns every catalog entry whose preferred extension is
// ext. The lookup is case-insensitive and tolerates a leading dot, so
// "png", ".png" and ".PNG" are equivalent. The result is in catalog
// order and empty when no format uses the extension.
//
// This is a catalog query only: it plays no part in content
// classification, which never consults file names.
func ByExtension(ext string) []FileFormat {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return nil
	}
	var matches []FileFormat
	for f := FileFormat(0); f < formatCount; f++ {
		if formatInfos[f].extension == ext {
			matches = append(matches, f)
		}
	}
	return matches
}

// ByMediaType returns every catalog entry registered under the given
// media type, e.g. "audio/ogg" yields Ogg Vorbis, Ogg Speex and Ogg
// FLAC. Parameters after a ";" are ignored. The result is in catalog
// order and empty when the media type is unknown.
func ByMediaType(mediaType string) []FileFormat {
	if idx := strings.Index(mediaType, ";"); idx != -1 {
		mediaType = mediaType[:idx]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == "" {
		return nil
	}
	var matches []FileFormat
	for f := FileFormat(0); f < formatCount; f++ {
		if formatInfos[f].mediaType == mediaType {
			matches = append(matches, f)
		}
	}
	return matches
}

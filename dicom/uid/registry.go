package uid

// TransferSyntaxInfo describes how a recognized Transfer Syntax UID affects
// stream framing. Compressed/encapsulated syntaxes are recorded for display
// purposes only: this package never decodes pixel data, so a compressed
// syntax still parses its header exactly like any other explicit-VR stream.
type TransferSyntaxInfo struct {
	Name          string
	ExplicitVR    bool
	LittleEndian  bool
	Deflated      bool
	Encapsulated  bool
}

// transferSyntaxRegistry maps known Transfer Syntax UIDs to their framing
// metadata. Only a handful of entries change the parser's byte-order/VR mode
// (see registry entries with Deflated or !LittleEndian); the rest document
// the encapsulated/compressed syntaxes a file may declare while header
// parsing proceeds identically to any explicit-VR little-endian stream.
var transferSyntaxRegistry = map[UID]TransferSyntaxInfo{
	ImplicitVRLittleEndian:         {Name: "Implicit VR Little Endian", ExplicitVR: false, LittleEndian: true},
	ExplicitVRLittleEndian:         {Name: "Explicit VR Little Endian", ExplicitVR: true, LittleEndian: true},
	ExplicitVRBigEndian:            {Name: "Explicit VR Big Endian", ExplicitVR: true, LittleEndian: false},
	DeflatedExplicitVRLittleEndian: {Name: "Deflated Explicit VR Little Endian", ExplicitVR: true, LittleEndian: true, Deflated: true},

	EncapsulatedUncompressedExplicitVRLittleEndian: {Name: "Encapsulated Uncompressed Explicit VR Little Endian", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEGBaselineProcess1:                 {Name: "JPEG Baseline (Process 1)", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEGExtendedProcess2And4:             {Name: "JPEG Extended (Process 2 and 4)", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEGLosslessNonHierarchicalProcess14: {Name: "JPEG Lossless, Non-Hierarchical (Process 14)", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEGLosslessNonHierarchicalFirstOrderPredictionProcess14SelectionValue1: {Name: "JPEG Lossless, Non-Hierarchical, First-Order Prediction", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEGLsLosslessImageCompression:           {Name: "JPEG-LS Lossless Image Compression", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEGLsLossyNearLosslessImageCompression:  {Name: "JPEG-LS Lossy (Near-Lossless) Image Compression", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEG2000ImageCompressionLosslessOnly:     {Name: "JPEG 2000 Image Compression (Lossless Only)", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEG2000ImageCompression:                 {Name: "JPEG 2000 Image Compression", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	HighThroughputJPEG2000ImageCompressionLosslessOnly: {Name: "High-Throughput JPEG 2000 Image Compression (Lossless Only)", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	HighThroughputJPEG2000ImageCompression:             {Name: "High-Throughput JPEG 2000 Image Compression", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	RLELossless:              {Name: "RLE Lossless", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	Mpeg2MainProfileMainLevel: {Name: "MPEG2 Main Profile / Main Level", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	MPEG4AvcH264HighProfileLevel41: {Name: "MPEG-4 AVC/H.264 High Profile / Level 4.1", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	HevcH265MainProfileLevel51:     {Name: "HEVC/H.265 Main Profile / Level 5.1", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEGXlLossless:                 {Name: "JPEG XL Lossless", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
	JPEGXl:                         {Name: "JPEG XL", ExplicitVR: true, LittleEndian: true, Encapsulated: true},
}

// LookupTransferSyntax returns the registered framing metadata for a
// Transfer Syntax UID string. The second return value is false for any UID
// not in the registry, including syntactically valid but unrecognized UIDs;
// callers default to explicit-VR little-endian framing in that case.
func LookupTransferSyntax(rawUID string) (TransferSyntaxInfo, bool) {
	u, err := Parse(rawUID)
	if err != nil {
		return TransferSyntaxInfo{}, false
	}
	info, ok := transferSyntaxRegistry[u]
	return info, ok
}

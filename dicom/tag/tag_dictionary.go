package tag

import "github.com/codeninja55/go-radx/dicom/vr"

// Named tags for elements commonly referenced by keyword rather than by
// numeric (group,element) pair. This mirrors the handful of tags pydicom
// and similar libraries expose as package-level constants; the full
// standard dictionary (~5,256 entries, DICOM PS3.6) is data, not code, and
// is represented here by a curated working subset rather than transcribed
// in full.
var (
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	FileMetaInformationVersion     = New(0x0002, 0x0001)
	MediaStorageSOPClassUID        = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID     = New(0x0002, 0x0003)
	TransferSyntaxUID              = New(0x0002, 0x0010)
	ImplementationClassUID         = New(0x0002, 0x0012)
	ImplementationVersionName      = New(0x0002, 0x0013)
	SourceApplicationEntityTitle   = New(0x0002, 0x0016)

	SpecificCharacterSet    = New(0x0008, 0x0005)
	ImageType               = New(0x0008, 0x0008)
	SOPClassUID             = New(0x0008, 0x0016)
	SOPInstanceUID          = New(0x0008, 0x0018)
	StudyDate               = New(0x0008, 0x0020)
	SeriesDate              = New(0x0008, 0x0021)
	AcquisitionDate         = New(0x0008, 0x0022)
	ContentDate             = New(0x0008, 0x0023)
	StudyTime               = New(0x0008, 0x0030)
	SeriesTime              = New(0x0008, 0x0031)
	AccessionNumber         = New(0x0008, 0x0050)
	Modality                = New(0x0008, 0x0060)
	Manufacturer            = New(0x0008, 0x0070)
	InstitutionName         = New(0x0008, 0x0080)
	ReferringPhysicianName  = New(0x0008, 0x0090)
	StudyDescription        = New(0x0008, 0x1030)
	SeriesDescription       = New(0x0008, 0x103E)
	ManufacturerModelName   = New(0x0008, 0x1090)
	ReferencedStudySequence = New(0x0008, 0x1110)
	ReferencedSeriesSequence = New(0x0008, 0x1115)

	PatientName        = New(0x0010, 0x0010)
	PatientID          = New(0x0010, 0x0020)
	PatientBirthDate   = New(0x0010, 0x0030)
	PatientSex         = New(0x0010, 0x0040)
	PatientAge         = New(0x0010, 0x1010)
	PatientWeight      = New(0x0010, 0x1030)

	StudyInstanceUID    = New(0x0020, 0x000D)
	SeriesInstanceUID   = New(0x0020, 0x000E)
	StudyID             = New(0x0020, 0x0010)
	SeriesNumber        = New(0x0020, 0x0011)
	AcquisitionNumber   = New(0x0020, 0x0012)
	InstanceNumber      = New(0x0020, 0x0013)
	PatientOrientation  = New(0x0020, 0x0020)
	ImagePositionPatient = New(0x0020, 0x0032)
	ImageOrientationPatient = New(0x0020, 0x0037)
	FrameOfReferenceUID = New(0x0020, 0x0052)

	SamplesPerPixel           = New(0x0028, 0x0002)
	PhotometricInterpretation = New(0x0028, 0x0004)
	Rows                      = New(0x0028, 0x0010)
	Columns                   = New(0x0028, 0x0011)
	PixelSpacing              = New(0x0028, 0x0030)
	BitsAllocated             = New(0x0028, 0x0100)
	BitsStored                = New(0x0028, 0x0101)
	HighBit                   = New(0x0028, 0x0102)
	PixelRepresentation       = New(0x0028, 0x0103)
	WindowCenter              = New(0x0028, 0x1050)
	WindowWidth               = New(0x0028, 0x1051)
	RescaleIntercept          = New(0x0028, 0x1052)
	RescaleSlope              = New(0x0028, 0x1053)

	RequestedProcedureDescription = New(0x0032, 0x1060)

	PixelData = New(0x7FE0, 0x0010)
)

func entry(g, e uint16, vrs []vr.VR, vm, name, keyword string, retired bool) {
	t := New(g, e)
	TagDict[t] = Info{Tag: t, VRs: vrs, Name: name, Keyword: keyword, VM: vm, Retired: retired}
}

// TagDict is the curated standard dictionary: tag -> {name, VR(s), VM,
// keyword, retired}. It favors the tags a DICOM Part 10 header actually
// carries (file meta, patient/study/series identity, image geometry,
// pixel macro) over exhaustive coverage of PS3.6.
var TagDict = map[Tag]Info{}

func init() {
	entry(0x0002, 0x0000, []vr.VR{vr.UnsignedLong}, "1", "File Meta Information Group Length", "FileMetaInformationGroupLength", false)
	entry(0x0002, 0x0001, []vr.VR{vr.OtherByte}, "1", "File Meta Information Version", "FileMetaInformationVersion", false)
	entry(0x0002, 0x0002, []vr.VR{vr.UniqueIdentifier}, "1", "Media Storage SOP Class UID", "MediaStorageSOPClassUID", false)
	entry(0x0002, 0x0003, []vr.VR{vr.UniqueIdentifier}, "1", "Media Storage SOP Instance UID", "MediaStorageSOPInstanceUID", false)
	entry(0x0002, 0x0010, []vr.VR{vr.UniqueIdentifier}, "1", "Transfer Syntax UID", "TransferSyntaxUID", false)
	entry(0x0002, 0x0012, []vr.VR{vr.UniqueIdentifier}, "1", "Implementation Class UID", "ImplementationClassUID", false)
	entry(0x0002, 0x0013, []vr.VR{vr.ShortString}, "1", "Implementation Version Name", "ImplementationVersionName", false)
	entry(0x0002, 0x0016, []vr.VR{vr.ApplicationEntity}, "1", "Source Application Entity Title", "SourceApplicationEntityTitle", false)

	entry(0x0008, 0x0005, []vr.VR{vr.CodeString}, "1-n", "Specific Character Set", "SpecificCharacterSet", false)
	entry(0x0008, 0x0008, []vr.VR{vr.CodeString}, "2-n", "Image Type", "ImageType", false)
	entry(0x0008, 0x0016, []vr.VR{vr.UniqueIdentifier}, "1", "SOP Class UID", "SOPClassUID", false)
	entry(0x0008, 0x0018, []vr.VR{vr.UniqueIdentifier}, "1", "SOP Instance UID", "SOPInstanceUID", false)
	entry(0x0008, 0x0020, []vr.VR{vr.Date}, "1", "Study Date", "StudyDate", false)
	entry(0x0008, 0x0021, []vr.VR{vr.Date}, "1", "Series Date", "SeriesDate", false)
	entry(0x0008, 0x0022, []vr.VR{vr.Date}, "1", "Acquisition Date", "AcquisitionDate", false)
	entry(0x0008, 0x0023, []vr.VR{vr.Date}, "1", "Content Date", "ContentDate", false)
	entry(0x0008, 0x0030, []vr.VR{vr.Time}, "1", "Study Time", "StudyTime", false)
	entry(0x0008, 0x0031, []vr.VR{vr.Time}, "1", "Series Time", "SeriesTime", false)
	entry(0x0008, 0x0050, []vr.VR{vr.ShortString}, "1", "Accession Number", "AccessionNumber", false)
	entry(0x0008, 0x0060, []vr.VR{vr.CodeString}, "1", "Modality", "Modality", false)
	entry(0x0008, 0x0070, []vr.VR{vr.LongString}, "1", "Manufacturer", "Manufacturer", false)
	entry(0x0008, 0x0080, []vr.VR{vr.LongString}, "1", "Institution Name", "InstitutionName", false)
	entry(0x0008, 0x0090, []vr.VR{vr.PersonName}, "1", "Referring Physician's Name", "ReferringPhysicianName", false)
	entry(0x0008, 0x1030, []vr.VR{vr.LongString}, "1", "Study Description", "StudyDescription", false)
	entry(0x0008, 0x103E, []vr.VR{vr.LongString}, "1", "Series Description", "SeriesDescription", false)
	entry(0x0008, 0x1090, []vr.VR{vr.LongString}, "1", "Manufacturer's Model Name", "ManufacturerModelName", false)
	entry(0x0008, 0x1110, []vr.VR{vr.SequenceOfItems}, "1", "Referenced Study Sequence", "ReferencedStudySequence", false)
	entry(0x0008, 0x1115, []vr.VR{vr.SequenceOfItems}, "1", "Referenced Series Sequence", "ReferencedSeriesSequence", false)

	entry(0x0010, 0x0010, []vr.VR{vr.PersonName}, "1", "Patient's Name", "PatientName", false)
	entry(0x0010, 0x0020, []vr.VR{vr.LongString}, "1", "Patient ID", "PatientID", false)
	entry(0x0010, 0x0030, []vr.VR{vr.Date}, "1", "Patient's Birth Date", "PatientBirthDate", false)
	entry(0x0010, 0x0040, []vr.VR{vr.CodeString}, "1", "Patient's Sex", "PatientSex", false)
	entry(0x0010, 0x1010, []vr.VR{vr.AgeString}, "1", "Patient's Age", "PatientAge", false)
	entry(0x0010, 0x1030, []vr.VR{vr.DecimalString}, "1", "Patient's Weight", "PatientWeight", false)

	entry(0x0020, 0x000D, []vr.VR{vr.UniqueIdentifier}, "1", "Study Instance UID", "StudyInstanceUID", false)
	entry(0x0020, 0x000E, []vr.VR{vr.UniqueIdentifier}, "1", "Series Instance UID", "SeriesInstanceUID", false)
	entry(0x0020, 0x0010, []vr.VR{vr.ShortString}, "1", "Study ID", "StudyID", false)
	entry(0x0020, 0x0011, []vr.VR{vr.IntegerString}, "1", "Series Number", "SeriesNumber", false)
	entry(0x0020, 0x0012, []vr.VR{vr.IntegerString}, "1", "Acquisition Number", "AcquisitionNumber", false)
	entry(0x0020, 0x0013, []vr.VR{vr.IntegerString}, "1", "Instance Number", "InstanceNumber", false)
	entry(0x0020, 0x0020, []vr.VR{vr.CodeString}, "2", "Patient Orientation", "PatientOrientation", false)
	entry(0x0020, 0x0032, []vr.VR{vr.DecimalString}, "3", "Image Position (Patient)", "ImagePositionPatient", false)
	entry(0x0020, 0x0037, []vr.VR{vr.DecimalString}, "6", "Image Orientation (Patient)", "ImageOrientationPatient", false)
	entry(0x0020, 0x0052, []vr.VR{vr.UniqueIdentifier}, "1", "Frame of Reference UID", "FrameOfReferenceUID", false)

	entry(0x0028, 0x0002, []vr.VR{vr.UnsignedShort}, "1", "Samples per Pixel", "SamplesPerPixel", false)
	entry(0x0028, 0x0004, []vr.VR{vr.CodeString}, "1", "Photometric Interpretation", "PhotometricInterpretation", false)
	entry(0x0028, 0x0010, []vr.VR{vr.UnsignedShort}, "1", "Rows", "Rows", false)
	entry(0x0028, 0x0011, []vr.VR{vr.UnsignedShort}, "1", "Columns", "Columns", false)
	entry(0x0028, 0x0030, []vr.VR{vr.DecimalString}, "2", "Pixel Spacing", "PixelSpacing", false)
	entry(0x0028, 0x0100, []vr.VR{vr.UnsignedShort}, "1", "Bits Allocated", "BitsAllocated", false)
	entry(0x0028, 0x0101, []vr.VR{vr.UnsignedShort}, "1", "Bits Stored", "BitsStored", false)
	entry(0x0028, 0x0102, []vr.VR{vr.UnsignedShort}, "1", "High Bit", "HighBit", false)
	entry(0x0028, 0x0103, []vr.VR{vr.UnsignedShort}, "1", "Pixel Representation", "PixelRepresentation", false)
	entry(0x0028, 0x1050, []vr.VR{vr.DecimalString}, "1-n", "Window Center", "WindowCenter", false)
	entry(0x0028, 0x1051, []vr.VR{vr.DecimalString}, "1-n", "Window Width", "WindowWidth", false)
	entry(0x0028, 0x1052, []vr.VR{vr.DecimalString}, "1", "Rescale Intercept", "RescaleIntercept", false)
	entry(0x0028, 0x1053, []vr.VR{vr.DecimalString}, "1", "Rescale Slope", "RescaleSlope", false)

	entry(0x0032, 0x1060, []vr.VR{vr.LongString}, "1", "Requested Procedure Description", "RequestedProcedureDescription", false)

	entry(0x7FE0, 0x0010, []vr.VR{vr.OtherByte, vr.OtherWord}, "1", "Pixel Data", "PixelData", false)
}

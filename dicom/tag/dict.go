package tag

import (
	"github.com/gitter-badger/dicom-streams/dicom/vr"
)

// Well-known tags used throughout the streaming engine. The full standard
// dictionary has several thousand entries; this table carries the file meta
// group, the common patient/study/series/image modules, the structural tags
// of Part 5 and the pixel data tags.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
var (
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	FileMetaInformationVersion     = New(0x0002, 0x0001)
	MediaStorageSOPClassUID        = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID     = New(0x0002, 0x0003)
	TransferSyntaxUID              = New(0x0002, 0x0010)
	ImplementationClassUID         = New(0x0002, 0x0012)
	ImplementationVersionName      = New(0x0002, 0x0013)
	SourceApplicationEntityTitle   = New(0x0002, 0x0016)

	SpecificCharacterSet   = New(0x0008, 0x0005)
	ImageType              = New(0x0008, 0x0008)
	InstanceCreationDate   = New(0x0008, 0x0012)
	InstanceCreationTime   = New(0x0008, 0x0013)
	InstanceCreatorUID     = New(0x0008, 0x0014)
	SOPClassUID            = New(0x0008, 0x0016)
	SOPInstanceUID         = New(0x0008, 0x0018)
	StudyDate              = New(0x0008, 0x0020)
	SeriesDate             = New(0x0008, 0x0021)
	AcquisitionDate        = New(0x0008, 0x0022)
	ContentDate            = New(0x0008, 0x0023)
	StudyTime              = New(0x0008, 0x0030)
	SeriesTime             = New(0x0008, 0x0031)
	ContentTime            = New(0x0008, 0x0033)
	AccessionNumber        = New(0x0008, 0x0050)
	Modality               = New(0x0008, 0x0060)
	Manufacturer           = New(0x0008, 0x0070)
	InstitutionName        = New(0x0008, 0x0080)
	ReferringPhysicianName = New(0x0008, 0x0090)
	StationName            = New(0x0008, 0x1010)
	StudyDescription       = New(0x0008, 0x1030)
	SeriesDescription      = New(0x0008, 0x103E)
	OperatorsName          = New(0x0008, 0x1070)
	ReferencedImageSequence = New(0x0008, 0x1140)
	DerivationDescription   = New(0x0008, 0x2111)
	AnatomicRegionSequence  = New(0x0008, 0x2218)
	DerivationCodeSequence  = New(0x0008, 0x9215)

	PatientName      = New(0x0010, 0x0010)
	PatientID        = New(0x0010, 0x0020)
	PatientBirthDate = New(0x0010, 0x0030)
	PatientSex       = New(0x0010, 0x0040)
	PatientAge       = New(0x0010, 0x1010)
	PatientWeight    = New(0x0010, 0x1030)
	PatientComments  = New(0x0010, 0x4000)

	BodyPartExamined  = New(0x0018, 0x0015)
	SliceThickness    = New(0x0018, 0x0050)
	KVP               = New(0x0018, 0x0060)
	DeviceSerialNumber = New(0x0018, 0x1000)
	SoftwareVersions   = New(0x0018, 0x1020)
	ProtocolName       = New(0x0018, 0x1030)
	PatientPosition    = New(0x0018, 0x5100)

	StudyInstanceUID        = New(0x0020, 0x000D)
	SeriesInstanceUID       = New(0x0020, 0x000E)
	StudyID                 = New(0x0020, 0x0010)
	SeriesNumber            = New(0x0020, 0x0011)
	AcquisitionNumber       = New(0x0020, 0x0012)
	InstanceNumber          = New(0x0020, 0x0013)
	ImagePositionPatient    = New(0x0020, 0x0032)
	ImageOrientationPatient = New(0x0020, 0x0037)
	FrameOfReferenceUID     = New(0x0020, 0x0052)
	ImageComments           = New(0x0020, 0x4000)

	SamplesPerPixel           = New(0x0028, 0x0002)
	PhotometricInterpretation = New(0x0028, 0x0004)
	NumberOfFrames            = New(0x0028, 0x0008)
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
	PerformedProcedureStepStartDate = New(0x0040, 0x0244)
	RequestAttributesSequence       = New(0x0040, 0x0275)

	PixelData = New(0x7FE0, 0x0010)

	Item                    = New(0xFFFE, 0xE000)
	ItemDelimitationItem    = New(0xFFFE, 0xE00D)
	SequenceDelimitationItem = New(0xFFFE, 0xE0DD)
)

func entry(t Tag, name, keyword, vm string, vrs ...vr.VR) Info {
	return Info{Tag: t, VRs: vrs, Name: name, Keyword: keyword, VM: vm}
}

// dict is the static tag dictionary, constructed once at init and never
// mutated.
var dict = map[Tag]Info{
	FileMetaInformationGroupLength: entry(FileMetaInformationGroupLength, "File Meta Information Group Length", "FileMetaInformationGroupLength", "1", vr.UnsignedLong),
	FileMetaInformationVersion:     entry(FileMetaInformationVersion, "File Meta Information Version", "FileMetaInformationVersion", "1", vr.OtherByte),
	MediaStorageSOPClassUID:        entry(MediaStorageSOPClassUID, "Media Storage SOP Class UID", "MediaStorageSOPClassUID", "1", vr.UniqueIdentifier),
	MediaStorageSOPInstanceUID:     entry(MediaStorageSOPInstanceUID, "Media Storage SOP Instance UID", "MediaStorageSOPInstanceUID", "1", vr.UniqueIdentifier),
	TransferSyntaxUID:              entry(TransferSyntaxUID, "Transfer Syntax UID", "TransferSyntaxUID", "1", vr.UniqueIdentifier),
	ImplementationClassUID:         entry(ImplementationClassUID, "Implementation Class UID", "ImplementationClassUID", "1", vr.UniqueIdentifier),
	ImplementationVersionName:      entry(ImplementationVersionName, "Implementation Version Name", "ImplementationVersionName", "1", vr.ShortString),
	SourceApplicationEntityTitle:   entry(SourceApplicationEntityTitle, "Source Application Entity Title", "SourceApplicationEntityTitle", "1", vr.ApplicationEntity),

	SpecificCharacterSet:    entry(SpecificCharacterSet, "Specific Character Set", "SpecificCharacterSet", "1-n", vr.CodeString),
	ImageType:               entry(ImageType, "Image Type", "ImageType", "2-n", vr.CodeString),
	InstanceCreationDate:    entry(InstanceCreationDate, "Instance Creation Date", "InstanceCreationDate", "1", vr.Date),
	InstanceCreationTime:    entry(InstanceCreationTime, "Instance Creation Time", "InstanceCreationTime", "1", vr.Time),
	InstanceCreatorUID:      entry(InstanceCreatorUID, "Instance Creator UID", "InstanceCreatorUID", "1", vr.UniqueIdentifier),
	SOPClassUID:             entry(SOPClassUID, "SOP Class UID", "SOPClassUID", "1", vr.UniqueIdentifier),
	SOPInstanceUID:          entry(SOPInstanceUID, "SOP Instance UID", "SOPInstanceUID", "1", vr.UniqueIdentifier),
	StudyDate:               entry(StudyDate, "Study Date", "StudyDate", "1", vr.Date),
	SeriesDate:              entry(SeriesDate, "Series Date", "SeriesDate", "1", vr.Date),
	AcquisitionDate:         entry(AcquisitionDate, "Acquisition Date", "AcquisitionDate", "1", vr.Date),
	ContentDate:             entry(ContentDate, "Content Date", "ContentDate", "1", vr.Date),
	StudyTime:               entry(StudyTime, "Study Time", "StudyTime", "1", vr.Time),
	SeriesTime:              entry(SeriesTime, "Series Time", "SeriesTime", "1", vr.Time),
	ContentTime:             entry(ContentTime, "Content Time", "ContentTime", "1", vr.Time),
	AccessionNumber:         entry(AccessionNumber, "Accession Number", "AccessionNumber", "1", vr.ShortString),
	Modality:                entry(Modality, "Modality", "Modality", "1", vr.CodeString),
	Manufacturer:            entry(Manufacturer, "Manufacturer", "Manufacturer", "1", vr.LongString),
	InstitutionName:         entry(InstitutionName, "Institution Name", "InstitutionName", "1", vr.LongString),
	ReferringPhysicianName:  entry(ReferringPhysicianName, "Referring Physician's Name", "ReferringPhysicianName", "1", vr.PersonName),
	StationName:             entry(StationName, "Station Name", "StationName", "1", vr.ShortString),
	StudyDescription:        entry(StudyDescription, "Study Description", "StudyDescription", "1", vr.LongString),
	SeriesDescription:       entry(SeriesDescription, "Series Description", "SeriesDescription", "1", vr.LongString),
	OperatorsName:           entry(OperatorsName, "Operators' Name", "OperatorsName", "1-n", vr.PersonName),
	ReferencedImageSequence: entry(ReferencedImageSequence, "Referenced Image Sequence", "ReferencedImageSequence", "1", vr.SequenceOfItems),
	DerivationDescription:   entry(DerivationDescription, "Derivation Description", "DerivationDescription", "1", vr.ShortText),
	AnatomicRegionSequence:  entry(AnatomicRegionSequence, "Anatomic Region Sequence", "AnatomicRegionSequence", "1", vr.SequenceOfItems),
	DerivationCodeSequence:  entry(DerivationCodeSequence, "Derivation Code Sequence", "DerivationCodeSequence", "1", vr.SequenceOfItems),

	PatientName:      entry(PatientName, "Patient's Name", "PatientName", "1", vr.PersonName),
	PatientID:        entry(PatientID, "Patient ID", "PatientID", "1", vr.LongString),
	PatientBirthDate: entry(PatientBirthDate, "Patient's Birth Date", "PatientBirthDate", "1", vr.Date),
	PatientSex:       entry(PatientSex, "Patient's Sex", "PatientSex", "1", vr.CodeString),
	PatientAge:       entry(PatientAge, "Patient's Age", "PatientAge", "1", vr.AgeString),
	PatientWeight:    entry(PatientWeight, "Patient's Weight", "PatientWeight", "1", vr.DecimalString),
	PatientComments:  entry(PatientComments, "Patient Comments", "PatientComments", "1", vr.LongText),

	BodyPartExamined:   entry(BodyPartExamined, "Body Part Examined", "BodyPartExamined", "1", vr.CodeString),
	SliceThickness:     entry(SliceThickness, "Slice Thickness", "SliceThickness", "1", vr.DecimalString),
	KVP:                entry(KVP, "KVP", "KVP", "1", vr.DecimalString),
	DeviceSerialNumber: entry(DeviceSerialNumber, "Device Serial Number", "DeviceSerialNumber", "1", vr.LongString),
	SoftwareVersions:   entry(SoftwareVersions, "Software Versions", "SoftwareVersions", "1-n", vr.LongString),
	ProtocolName:       entry(ProtocolName, "Protocol Name", "ProtocolName", "1", vr.LongString),
	PatientPosition:    entry(PatientPosition, "Patient Position", "PatientPosition", "1", vr.CodeString),

	StudyInstanceUID:        entry(StudyInstanceUID, "Study Instance UID", "StudyInstanceUID", "1", vr.UniqueIdentifier),
	SeriesInstanceUID:       entry(SeriesInstanceUID, "Series Instance UID", "SeriesInstanceUID", "1", vr.UniqueIdentifier),
	StudyID:                 entry(StudyID, "Study ID", "StudyID", "1", vr.ShortString),
	SeriesNumber:            entry(SeriesNumber, "Series Number", "SeriesNumber", "1", vr.IntegerString),
	AcquisitionNumber:       entry(AcquisitionNumber, "Acquisition Number", "AcquisitionNumber", "1", vr.IntegerString),
	InstanceNumber:          entry(InstanceNumber, "Instance Number", "InstanceNumber", "1", vr.IntegerString),
	ImagePositionPatient:    entry(ImagePositionPatient, "Image Position (Patient)", "ImagePositionPatient", "3", vr.DecimalString),
	ImageOrientationPatient: entry(ImageOrientationPatient, "Image Orientation (Patient)", "ImageOrientationPatient", "6", vr.DecimalString),
	FrameOfReferenceUID:     entry(FrameOfReferenceUID, "Frame of Reference UID", "FrameOfReferenceUID", "1", vr.UniqueIdentifier),
	ImageComments:           entry(ImageComments, "Image Comments", "ImageComments", "1", vr.LongText),

	SamplesPerPixel:           entry(SamplesPerPixel, "Samples per Pixel", "SamplesPerPixel", "1", vr.UnsignedShort),
	PhotometricInterpretation: entry(PhotometricInterpretation, "Photometric Interpretation", "PhotometricInterpretation", "1", vr.CodeString),
	NumberOfFrames:            entry(NumberOfFrames, "Number of Frames", "NumberOfFrames", "1", vr.IntegerString),
	Rows:                      entry(Rows, "Rows", "Rows", "1", vr.UnsignedShort),
	Columns:                   entry(Columns, "Columns", "Columns", "1", vr.UnsignedShort),
	PixelSpacing:              entry(PixelSpacing, "Pixel Spacing", "PixelSpacing", "2", vr.DecimalString),
	BitsAllocated:             entry(BitsAllocated, "Bits Allocated", "BitsAllocated", "1", vr.UnsignedShort),
	BitsStored:                entry(BitsStored, "Bits Stored", "BitsStored", "1", vr.UnsignedShort),
	HighBit:                   entry(HighBit, "High Bit", "HighBit", "1", vr.UnsignedShort),
	PixelRepresentation:       entry(PixelRepresentation, "Pixel Representation", "PixelRepresentation", "1", vr.UnsignedShort),
	WindowCenter:              entry(WindowCenter, "Window Center", "WindowCenter", "1-n", vr.DecimalString),
	WindowWidth:               entry(WindowWidth, "Window Width", "WindowWidth", "1-n", vr.DecimalString),
	RescaleIntercept:          entry(RescaleIntercept, "Rescale Intercept", "RescaleIntercept", "1", vr.DecimalString),
	RescaleSlope:              entry(RescaleSlope, "Rescale Slope", "RescaleSlope", "1", vr.DecimalString),

	RequestedProcedureDescription:   entry(RequestedProcedureDescription, "Requested Procedure Description", "RequestedProcedureDescription", "1", vr.LongString),
	PerformedProcedureStepStartDate: entry(PerformedProcedureStepStartDate, "Performed Procedure Step Start Date", "PerformedProcedureStepStartDate", "1", vr.Date),
	RequestAttributesSequence:       entry(RequestAttributesSequence, "Request Attributes Sequence", "RequestAttributesSequence", "1", vr.SequenceOfItems),

	PixelData: entry(PixelData, "Pixel Data", "PixelData", "1", vr.OtherWord, vr.OtherByte),

	Item:                     entry(Item, "Item", "Item", "1"),
	ItemDelimitationItem:     entry(ItemDelimitationItem, "Item Delimitation Item", "ItemDelimitationItem", "1"),
	SequenceDelimitationItem: entry(SequenceDelimitationItem, "Sequence Delimitation Item", "SequenceDelimitationItem", "1"),
}

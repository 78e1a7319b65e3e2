package uid

// Storage SOP Class UIDs commonly seen in transmission contexts.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part04.html#sect_B.5
var (
	// Verification SOP Class
	VerificationSOPClass = MustParse("1.2.840.10008.1.1")

	// Computed Radiography Image Storage
	ComputedRadiographyImageStorage = MustParse("1.2.840.10008.5.1.4.1.1.1")

	// Digital X-Ray Image Storage - For Presentation
	DigitalXRayImageStorageForPresentation = MustParse("1.2.840.10008.5.1.4.1.1.1.1")

	// CT Image Storage
	CTImageStorage = MustParse("1.2.840.10008.5.1.4.1.1.2")

	// Enhanced CT Image Storage
	EnhancedCTImageStorage = MustParse("1.2.840.10008.5.1.4.1.1.2.1")

	// Ultrasound Image Storage
	UltrasoundImageStorage = MustParse("1.2.840.10008.5.1.4.1.1.6.1")

	// Secondary Capture Image Storage
	SecondaryCaptureImageStorage = MustParse("1.2.840.10008.5.1.4.1.1.7")

	// MR Image Storage
	MRImageStorage = MustParse("1.2.840.10008.5.1.4.1.1.4")

	// Enhanced MR Image Storage
	EnhancedMRImageStorage = MustParse("1.2.840.10008.5.1.4.1.1.4.1")

	// Positron Emission Tomography Image Storage
	PositronEmissionTomographyImageStorage = MustParse("1.2.840.10008.5.1.4.1.1.128")

	// Nuclear Medicine Image Storage
	NuclearMedicineImageStorage = MustParse("1.2.840.10008.5.1.4.1.1.20")

	// Digital Mammography X-Ray Image Storage - For Presentation
	DigitalMammographyXRayImageStorageForPresentation = MustParse("1.2.840.10008.5.1.4.1.1.1.2")
)

// uidMap is the static UID registry, constructed once and never mutated.
var uidMap = map[string]Info{
	ImplicitVRLittleEndian.String():   {UID: ImplicitVRLittleEndian, Name: "Implicit VR Little Endian", Type: TypeTransferSyntax},
	ExplicitVRLittleEndian.String():   {UID: ExplicitVRLittleEndian, Name: "Explicit VR Little Endian", Type: TypeTransferSyntax},
	ExplicitVRBigEndian.String():      {UID: ExplicitVRBigEndian, Name: "Explicit VR Big Endian (Retired)", Type: TypeTransferSyntax, Retired: true},
	DeflatedExplicitVRLittleEndian.String(): {UID: DeflatedExplicitVRLittleEndian, Name: "Deflated Explicit VR Little Endian", Type: TypeTransferSyntax},
	EncapsulatedUncompressedExplicitVRLittleEndian.String(): {UID: EncapsulatedUncompressedExplicitVRLittleEndian, Name: "Encapsulated Uncompressed Explicit VR Little Endian", Type: TypeTransferSyntax},
	RLELossless.String():      {UID: RLELossless, Name: "RLE Lossless", Type: TypeTransferSyntax},
	JPEGBaseline8Bit.String(): {UID: JPEGBaseline8Bit, Name: "JPEG Baseline (Process 1)", Type: TypeTransferSyntax},
	JPEGLosslessSV1.String():  {UID: JPEGLosslessSV1, Name: "JPEG Lossless, Non-Hierarchical, First-Order Prediction (Process 14 [Selection Value 1])", Type: TypeTransferSyntax},
	JPEG2000Lossless.String(): {UID: JPEG2000Lossless, Name: "JPEG 2000 Image Compression (Lossless Only)", Type: TypeTransferSyntax},
	JPEG2000.String():         {UID: JPEG2000, Name: "JPEG 2000 Image Compression", Type: TypeTransferSyntax},

	VerificationSOPClass.String():            {UID: VerificationSOPClass, Name: "Verification SOP Class", Type: TypeSOPClass},
	ComputedRadiographyImageStorage.String(): {UID: ComputedRadiographyImageStorage, Name: "Computed Radiography Image Storage", Type: TypeSOPClass},
	DigitalXRayImageStorageForPresentation.String(): {UID: DigitalXRayImageStorageForPresentation, Name: "Digital X-Ray Image Storage - For Presentation", Type: TypeSOPClass},
	CTImageStorage.String():               {UID: CTImageStorage, Name: "CT Image Storage", Type: TypeSOPClass},
	EnhancedCTImageStorage.String():       {UID: EnhancedCTImageStorage, Name: "Enhanced CT Image Storage", Type: TypeSOPClass},
	UltrasoundImageStorage.String():       {UID: UltrasoundImageStorage, Name: "Ultrasound Image Storage", Type: TypeSOPClass},
	SecondaryCaptureImageStorage.String(): {UID: SecondaryCaptureImageStorage, Name: "Secondary Capture Image Storage", Type: TypeSOPClass},
	MRImageStorage.String():               {UID: MRImageStorage, Name: "MR Image Storage", Type: TypeSOPClass},
	EnhancedMRImageStorage.String():       {UID: EnhancedMRImageStorage, Name: "Enhanced MR Image Storage", Type: TypeSOPClass},
	PositronEmissionTomographyImageStorage.String(): {UID: PositronEmissionTomographyImageStorage, Name: "Positron Emission Tomography Image Storage", Type: TypeSOPClass},
	NuclearMedicineImageStorage.String():            {UID: NuclearMedicineImageStorage, Name: "Nuclear Medicine Image Storage", Type: TypeSOPClass},
	DigitalMammographyXRayImageStorageForPresentation.String(): {UID: DigitalMammographyXRayImageStorageForPresentation, Name: "Digital Mammography X-Ray Image Storage - For Presentation", Type: TypeSOPClass},
}

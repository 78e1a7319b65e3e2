package uid

// Transfer Syntax UIDs handled by the streaming engine.
// The encapsulated (JPEG family, RLE) syntaxes share the Explicit VR Little
// Endian encoding of the dataset; their pixel data travels as fragments.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
var (
	// Implicit VR Little Endian
	ImplicitVRLittleEndian = MustParse("1.2.840.10008.1.2")

	// Explicit VR Little Endian
	ExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1")

	// Encapsulated Uncompressed Explicit VR Little Endian
	EncapsulatedUncompressedExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1.98")

	// Deflated Explicit VR Little Endian
	DeflatedExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1.99")

	// Explicit VR Big Endian (RETIRED)
	//
	// Deprecated: This UID has been retired from the DICOM standard.
	ExplicitVRBigEndian = MustParse("1.2.840.10008.1.2.2")

	// RLE Lossless
	RLELossless = MustParse("1.2.840.10008.1.2.5")

	// JPEG Baseline (Process 1)
	JPEGBaseline8Bit = MustParse("1.2.840.10008.1.2.4.50")

	// JPEG Lossless, Non-Hierarchical, First-Order Prediction (Process 14)
	JPEGLosslessSV1 = MustParse("1.2.840.10008.1.2.4.70")

	// JPEG 2000 Image Compression (Lossless Only)
	JPEG2000Lossless = MustParse("1.2.840.10008.1.2.4.90")

	// JPEG 2000 Image Compression
	JPEG2000 = MustParse("1.2.840.10008.1.2.4.91")
)
